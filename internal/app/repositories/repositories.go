package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	PaymentRepository *PaymentRepository
	EventRepository   *EventRepository
	UserRepository    *UserRepository
	TokenRepository   *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(db),
		PaymentRepository: NewPaymentRepository(db),
		EventRepository:   NewEventRepository(db),
		UserRepository:    NewUserRepository(db),
		TokenRepository:   NewTokenRepository(db),
	}
}
