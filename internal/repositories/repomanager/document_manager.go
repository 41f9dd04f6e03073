package repomanager

import (
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/repositories/contexts"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/repositories/conversations"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/repositories/users"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/snapshot"
)

// DocumentRepositoryManager serves every repository from JSON snapshots of
// one backend.
type DocumentRepositoryManager struct {
	backend       snapshot.Backend
	users         *users.DocumentRepository
	contexts      *contexts.DocumentRepository
	conversations *conversations.DocumentRepository
}

func NewDocumentRepositoryManager(b snapshot.Backend) *DocumentRepositoryManager {
	return &DocumentRepositoryManager{
		backend:       b,
		users:         users.NewDocumentRepository(b),
		contexts:      contexts.NewDocumentRepository(b),
		conversations: conversations.NewDocumentRepository(b),
	}
}

func (m *DocumentRepositoryManager) Users() users.Repository { return m.users }

func (m *DocumentRepositoryManager) Contexts() contexts.Repository { return m.contexts }

func (m *DocumentRepositoryManager) Conversations() conversations.Repository { return m.conversations }

func (m *DocumentRepositoryManager) Close() error { return m.backend.Close() }
