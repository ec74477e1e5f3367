package store

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"dormhub/internal/models"
)

// Store defines the interface for all database operations.
type Store interface {
	CreateUser(ctx context.Context, u *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)

	ListBuildings(ctx context.Context) ([]models.Building, error)
	CreateBuilding(ctx context.Context, b *models.Building) error
	CreateRoom(ctx context.Context, r *models.Room) error
	CreateBed(ctx context.Context, b *models.Bed) error

	CreateStudent(ctx context.Context, s *models.Student) error
	AssignBed(ctx context.Context, studentID, bedID uint) (*models.Student, error)
	ClearBed(ctx context.Context, studentID uint) (*models.Student, error)

	ListTickets(ctx context.Context, userID *uint) ([]models.Ticket, error)
	CreateTicket(ctx context.Context, t *models.Ticket) error
	UpdateTicketStatus(ctx context.Context, id uint, status models.TicketStatus) (*models.Ticket, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) CreateUser(ctx context.Context, u *models.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicateErr(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *gormStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListBuildings returns the full building tree with rooms and beds nested.
func (s *gormStore) ListBuildings(ctx context.Context) ([]models.Building, error) {
	var buildings []models.Building
	if err := s.db.WithContext(ctx).Preload("Rooms.Beds").Find(&buildings).Error; err != nil {
		return nil, err
	}
	return buildings, nil
}

func (s *gormStore) CreateBuilding(ctx context.Context, b *models.Building) error {
	return s.db.WithContext(ctx).Create(b).Error
}

func (s *gormStore) CreateRoom(ctx context.Context, r *models.Room) error {
	if err := s.exists(ctx, &models.Building{}, r.BuildingID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *gormStore) CreateBed(ctx context.Context, b *models.Bed) error {
	if err := s.exists(ctx, &models.Room{}, b.RoomID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(b).Error
}

func (s *gormStore) CreateStudent(ctx context.Context, st *models.Student) error {
	if err := s.exists(ctx, &models.User{}, st.UserID); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(st).Error; err != nil {
		if isDuplicateErr(err) {
			return ErrDuplicate
		}
		return err
	}
	return s.db.WithContext(ctx).Preload("User").First(st, st.ID).Error
}

// AssignBed checks a student into a bed. The occupancy pre-check gives the
// common case a clean answer; the unique index on students.bed_id makes the
// update itself single-winner under concurrent check-ins, so a racing loser
// still gets ErrBedOccupied instead of silently double-assigning.
func (s *gormStore) AssignBed(ctx context.Context, studentID, bedID uint) (*models.Student, error) {
	db := s.db.WithContext(ctx)

	var bed models.Bed
	if err := db.Preload("Student").First(&bed, bedID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBedNotFound
		}
		return nil, err
	}
	if bed.Student != nil {
		return nil, ErrBedOccupied
	}

	var student models.Student
	if err := db.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	if err := db.Model(&student).Update("bed_id", bedID).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, ErrBedOccupied
		}
		return nil, err
	}

	var updated models.Student
	if err := db.Preload("User").Preload("Bed.Room.Building").First(&updated, studentID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// ClearBed checks a student out. Clearing an already-empty bed reference is
// a no-op, so checkout is idempotent.
func (s *gormStore) ClearBed(ctx context.Context, studentID uint) (*models.Student, error) {
	db := s.db.WithContext(ctx)

	var student models.Student
	if err := db.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	if err := db.Model(&student).Update("bed_id", nil).Error; err != nil {
		return nil, err
	}

	var updated models.Student
	if err := db.Preload("User").First(&updated, studentID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListTickets returns tickets newest-first, scoped to one user when userID
// is set.
func (s *gormStore) ListTickets(ctx context.Context, userID *uint) ([]models.Ticket, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	var tickets []models.Ticket
	if err := q.Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (s *gormStore) CreateTicket(ctx context.Context, t *models.Ticket) error {
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *gormStore) UpdateTicketStatus(ctx context.Context, id uint, status models.TicketStatus) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := s.db.WithContext(ctx).First(&ticket, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&ticket).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

// exists verifies a referenced parent row is present before creating a child.
func (s *gormStore) exists(ctx context.Context, model interface{}, id uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// isDuplicateErr recognizes unique-constraint violations across drivers:
// GORM's translated error for sqlite, the raw pq error code for postgres.
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return false
}
