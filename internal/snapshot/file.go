package snapshot

import (
	"context"
	"path/filepath"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/filex"
)

// fileNames keeps the on-disk names of the flat-file layout.
var fileNames = map[string]string{
	Users:         "users_data.json",
	Context:       "user_context.json",
	Conversations: "conversations_data.json",
}

// FileBackend keeps one pretty-printed JSON file per collection in dir.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &FileBackend{dir: abs}, nil
}

func (b *FileBackend) Path(collection string) string {
	name, ok := fileNames[collection]
	if !ok {
		name = collection + ".json"
	}
	return filepath.Join(b.dir, name)
}

func (b *FileBackend) Load(_ context.Context, collection string) ([]byte, bool, error) {
	return filex.ReadFileIfExists(b.Path(collection))
}

func (b *FileBackend) Save(_ context.Context, collection string, data []byte) error {
	return filex.WriteFileAtomic(b.Path(collection), data, 0o600)
}

func (b *FileBackend) Close() error {
	return nil
}
