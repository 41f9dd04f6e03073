package chat

import "strings"

// profileQuestion is matched after trimming and lowercasing the input.
const profileQuestion = "who is iyyappan"

// ProfileResponse is returned verbatim for profileQuestion.
const ProfileResponse = `
Iyyappan is an aspiring AI and Software Developer with a strong interest in building intelligent, user-centric applications.

He is the creator of this AI assistant, designed to provide smart, efficient, and user-friendly interactions.

He works extensively with Python, Streamlit, LangChain, Groq LLMs, and modern web technologies, focusing on developing AI-powered tools such as chatbots, learning platforms, and productivity applications.

Currently, Iyyappan is focused on strengthening his expertise in Artificial Intelligence, Full-Stack Development, and system design, with the objective of building scalable, real-world solutions that enhance learning and work efficiency.

He values clean architecture, practical problem-solving, and continuous professional growth.
`

func isProfileQuestion(m string) bool {
	return strings.ToLower(strings.TrimSpace(m)) == profileQuestion
}
