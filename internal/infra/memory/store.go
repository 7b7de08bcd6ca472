package memory

import (
	"context"
	"fmt"
	"sync"

	authDomain "dropout-risk-api/internal/domain/auth"
	authinfra "dropout-risk-api/internal/infrastructure/auth"
)

// Store 為登入帳號的記憶體資料庫。帳號於啟動時 seed，執行期唯讀。
type Store struct {
	mu    sync.RWMutex
	users map[string]authDomain.User
	idSeq int64
}

// NewStore 建立新的記憶體 Store 實例。
func NewStore() *Store {
	return &Store{
		users: make(map[string]authDomain.User),
	}
}

// ID generator (simple incremental).
func (s *Store) nextID() string {
	s.idSeq++
	return fmt.Sprintf("id-%d", s.idSeq)
}

// SeedUser 建立預設帳號供登入使用，密碼以 bcrypt 雜湊儲存。
func (s *Store) SeedUser(email, password, name string) {
	hashed, err := authinfra.HashPassword(password)
	if err != nil {
		hashed = password
	}
	s.AddUser(email, hashed, name, authDomain.RoleAdmin)
}

// AddUser 新增帳號。
func (s *Store) AddUser(email, hashedPassword, name string, role authDomain.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	s.users[id] = authDomain.User{
		ID:       id,
		Email:    email,
		Name:     name,
		Role:     role,
		Status:   authDomain.StatusActive,
		Password: hashedPassword,
	}
}

// FindByEmail 依 email 查詢使用者。
func (s *Store) FindByEmail(ctx context.Context, email string) (authDomain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return authDomain.User{}, fmt.Errorf("user not found")
}

// FindByID 依 ID 查詢使用者。
func (s *Store) FindByID(ctx context.Context, id string) (authDomain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return authDomain.User{}, fmt.Errorf("user not found")
	}
	return u, nil
}
