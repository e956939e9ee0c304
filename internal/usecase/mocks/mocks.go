package mocks

import (
	"context"
	"sync"

	"github.com/iho/accountsvc/internal/domain"
)

// MockAccountRepository is a mock implementation of AccountRepository backed
// by an in-memory map. Func fields override individual methods.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[int64]*domain.Account
	nextID   int64

	CreateFunc          func(ctx context.Context, account *domain.Account) error
	GetByIDFunc         func(ctx context.Context, id int64) (*domain.Account, error)
	GetByOwnerAndIDFunc func(ctx context.Context, ownerID, id int64) (*domain.Account, error)
	ListByOwnerFunc     func(ctx context.Context, ownerID int64) ([]*domain.Account, error)
	ListFunc            func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	UpdateFunc          func(ctx context.Context, account *domain.Account) error
	DeleteFunc          func(ctx context.Context, id int64) error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[int64]*domain.Account),
		nextID:   1,
	}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	account.ID = m.nextID
	m.nextID++
	copied := *account
	m.accounts[account.ID] = &copied
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		copied := *acc
		return &copied, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByOwnerAndID(ctx context.Context, ownerID, id int64) (*domain.Account, error) {
	if m.GetByOwnerAndIDFunc != nil {
		return m.GetByOwnerAndIDFunc(ctx, ownerID, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok && acc.OwnerID == ownerID {
		copied := *acc
		return &copied, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Account, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	accounts := []*domain.Account{}
	for _, acc := range m.accounts {
		if acc.OwnerID == ownerID {
			copied := *acc
			accounts = append(accounts, &copied)
		}
	}
	return accounts, nil
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		copied := *acc
		accounts = append(accounts, &copied)
	}
	return accounts, nil
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.ID]; !ok {
		return domain.ErrAccountNotFound
	}
	copied := *account
	m.accounts[account.ID] = &copied
	return nil
}

func (m *MockAccountRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(m.accounts, id)
	return nil
}

// MockOwnerChecker is a mock implementation of OwnerChecker. By default every
// owner in Known exists.
type MockOwnerChecker struct {
	mu    sync.RWMutex
	Known map[int64]bool

	ExistsFunc func(ctx context.Context, ownerID int64) bool
}

func NewMockOwnerChecker(known ...int64) *MockOwnerChecker {
	m := &MockOwnerChecker{Known: make(map[int64]bool)}
	for _, id := range known {
		m.Known[id] = true
	}
	return m
}

func (m *MockOwnerChecker) Exists(ctx context.Context, ownerID int64) bool {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, ownerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Known[ownerID]
}

// MockAuditRepository is a mock implementation of AuditRepository.
type MockAuditRepository struct {
	mu      sync.RWMutex
	Entries []*domain.AuditLog

	CreateFunc func(ctx context.Context, entry *domain.AuditLog) error
	ListFunc   func(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error)
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, entry)
	return nil
}

func (m *MockAuditRepository) List(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if offset >= len(m.Entries) {
		return []*domain.AuditLog{}, nil
	}
	end := offset + limit
	if end > len(m.Entries) {
		end = len(m.Entries)
	}
	return m.Entries[offset:end], nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "test-audit-id"
}
