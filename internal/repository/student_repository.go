package repository

import (
	"strings"

	"github.com/google/uuid"

	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/store"
)

// StudentCollection names the shared store collection for students.
const StudentCollection = "students"

// StudentRepository provides typed access to the students collection.
type StudentRepository struct {
	store *store.Store
}

// NewStudentRepository constructs the repository.
func NewStudentRepository(s *store.Store) *StudentRepository {
	return &StudentRepository{store: s}
}

// Create appends a student record, assigning an id when absent.
func (r *StudentRepository) Create(student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	return r.store.Add(StudentCollection, *student)
}

// GetByID returns a copy of the student record.
func (r *StudentRepository) GetByID(id string) (*models.Student, error) {
	rec, err := r.store.GetByID(StudentCollection, id)
	if err != nil {
		return nil, err
	}
	student := rec.(models.Student)
	return &student, nil
}

// List returns students matching the filter with pagination applied.
func (r *StudentRepository) List(filter models.StudentFilter) ([]models.Student, int) {
	records := r.store.Get(StudentCollection)
	matched := make([]models.Student, 0, len(records))
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, rec := range records {
		student := rec.(models.Student)
		if filter.RoomNumber != "" && student.RoomNumber != filter.RoomNumber {
			continue
		}
		if search != "" && !matchesStudent(student, search) {
			continue
		}
		matched = append(matched, student)
	}

	total := len(matched)
	if filter.Page > 0 && filter.PageSize > 0 {
		start := (filter.Page - 1) * filter.PageSize
		if start >= total {
			return []models.Student{}, total
		}
		end := start + filter.PageSize
		if end > total {
			end = total
		}
		matched = matched[start:end]
	}
	return matched, total
}

// Update applies the mutation to the stored record.
func (r *StudentRepository) Update(id string, apply func(*models.Student)) (*models.Student, error) {
	rec, err := r.store.Update(StudentCollection, id, func(current store.Record) store.Record {
		student := current.(models.Student)
		apply(&student)
		return student
	})
	if err != nil {
		return nil, err
	}
	student := rec.(models.Student)
	return &student, nil
}

// Delete removes a student record.
func (r *StudentRepository) Delete(id string) error {
	return r.store.Delete(StudentCollection, id)
}

// Count returns the total number of students.
func (r *StudentRepository) Count() int {
	return r.store.Count(StudentCollection)
}

func matchesStudent(student models.Student, search string) bool {
	return strings.Contains(strings.ToLower(student.FullName), search) ||
		strings.Contains(strings.ToLower(student.Email), search) ||
		strings.Contains(strings.ToLower(student.RollNumber), search)
}
