package http

import (
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/chat"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/llm"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/models"
)

type loginPage struct {
	Email       string
	SignupEmail string
	Error       string
	Notice      string
}

type modelOption struct {
	ID       string
	Label    string
	Selected bool
}

type conversationItem struct {
	ID    string
	Title string
}

type chatPage struct {
	chat.Summary
	Identifier    string
	History       []models.Message
	Models        []modelOption
	Temperature   float64
	Conversations []conversationItem
	Error         string
	Notice        string
}

func modelOptions(selected string) []modelOption {
	out := make([]modelOption, 0, len(llm.Models))
	for _, m := range llm.Models {
		out = append(out, modelOption{ID: m.ID, Label: m.Label(), Selected: m.ID == selected})
	}
	return out
}

func conversationItems(convs []models.Conversation) []conversationItem {
	out := make([]conversationItem, 0, len(convs))
	for _, c := range convs {
		out = append(out, conversationItem{ID: c.ID, Title: chat.PreviewTitle(c.Title)})
	}
	return out
}
