package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/domains/book/repository"
	"catalog-backend/internal/infrastructure/email"
	"catalog-backend/internal/shared/etag"
	"catalog-backend/internal/shared/fault"
	"catalog-backend/internal/shared/validate"
	"catalog-backend/pkg/logger"
)

// BookService implements the write pipeline for books:
// validate -> check uniqueness -> resolve version -> persist -> notify.
type BookService struct {
	repo     repository.Repository
	notifier email.Notifier
}

func NewService(repo repository.Repository, notifier email.Notifier) ServiceInterface {
	return &BookService{
		repo:     repo,
		notifier: notifier,
	}
}

// Create runs the create pipeline. On success the id and keyword ids have
// been assigned, the stored version is 0 and a best-effort notification has
// been fired.
func (s *BookService) Create(ctx context.Context, book *model.Book) (uuid.UUID, error) {
	if messages := book.Validate(); len(messages) > 0 {
		return uuid.Nil, &fault.ConstraintViolations{Messages: messages}
	}

	book.ISBN = model.StripISBNDashes(book.ISBN)

	if err := s.checkCreate(ctx, book); err != nil {
		return uuid.Nil, err
	}

	book.ID = uuid.New()
	book.Version = 0
	for i := range book.Keywords {
		book.Keywords[i].ID = uuid.New()
		book.Keywords[i].BookID = book.ID
	}

	if err := s.repo.Insert(ctx, book); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create book: %w", err)
	}

	// Fire-and-forget: a failed notification never fails the create.
	go s.notifyCreated(*book)

	return book.ID, nil
}

// Update runs the update pipeline and returns the new version number.
func (s *BookService) Update(ctx context.Context, id string, book *model.Book, version string) (int, error) {
	parsedVersion, err := etag.Parse(version)
	if err != nil {
		return 0, err
	}

	// An unparsable id is treated exactly like an unknown one.
	if !validate.ID(id) {
		return 0, &fault.EntityNotExists{ID: id}
	}

	if messages := book.Validate(); len(messages) > 0 {
		return 0, &fault.ConstraintViolations{Messages: messages}
	}

	book.ISBN = model.StripISBNDashes(book.ISBN)

	if err := s.checkUpdate(ctx, book, id); err != nil {
		return 0, err
	}

	stored, err := s.repo.FindByID(ctx, uuid.MustParse(id))
	if err != nil {
		return 0, fmt.Errorf("failed to load book: %w", err)
	}
	if stored == nil {
		return 0, &fault.EntityNotExists{ID: id}
	}

	if err := etag.CheckCurrent(id, parsedVersion, stored.Version); err != nil {
		return 0, err
	}

	model.ApplyUpdate(stored, *book)

	newVersion, err := s.repo.Update(ctx, stored)
	if err != nil {
		return 0, err
	}

	return newVersion, nil
}

// Delete removes the book and its keywords in one atomic unit. Deleting
// something already absent is not a failure.
func (s *BookService) Delete(ctx context.Context, id string) (bool, error) {
	if !validate.ID(id) {
		return false, nil
	}

	stored, err := s.repo.FindByID(ctx, uuid.MustParse(id))
	if err != nil {
		return false, fmt.Errorf("failed to load book: %w", err)
	}
	if stored == nil {
		return false, nil
	}

	affected, err := s.repo.DeleteCascade(ctx, stored.ID)
	if err != nil {
		return false, fmt.Errorf("failed to delete book: %w", err)
	}

	return affected > 0, nil
}

func (s *BookService) FindByID(ctx context.Context, id string) (*model.Book, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return s.repo.FindByID(ctx, parsed)
}

func (s *BookService) Find(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	return s.repo.Find(ctx, filter)
}

// checkCreate looks up each natural-key field in turn, title first, and
// returns the first conflict found.
func (s *BookService) checkCreate(ctx context.Context, book *model.Book) error {
	books, err := s.repo.FindByField(ctx, "title", book.Title)
	if err != nil {
		return fmt.Errorf("failed to check title: %w", err)
	}
	if len(books) > 0 {
		return &fault.NaturalKeyExists{Field: "title", Value: book.Title, ID: books[0].ID.String()}
	}

	books, err = s.repo.FindByField(ctx, "isbn", book.ISBN)
	if err != nil {
		return fmt.Errorf("failed to check isbn: %w", err)
	}
	if len(books) > 0 {
		return &fault.NaturalKeyExists{Field: "isbn", Value: book.ISBN, ID: books[0].ID.String()}
	}

	return nil
}

// checkUpdate is checkCreate with the target id excluded: an entity colliding
// with itself is not a conflict.
func (s *BookService) checkUpdate(ctx context.Context, book *model.Book, id string) error {
	books, err := s.repo.FindByField(ctx, "title", book.Title)
	if err != nil {
		return fmt.Errorf("failed to check title: %w", err)
	}
	if conflict := firstOther(books, id); conflict != nil {
		return &fault.NaturalKeyExists{Field: "title", Value: book.Title, ID: conflict.ID.String()}
	}

	books, err = s.repo.FindByField(ctx, "isbn", book.ISBN)
	if err != nil {
		return fmt.Errorf("failed to check isbn: %w", err)
	}
	if conflict := firstOther(books, id); conflict != nil {
		return &fault.NaturalKeyExists{Field: "isbn", Value: book.ISBN, ID: conflict.ID.String()}
	}

	return nil
}

func firstOther(books []model.Book, id string) *model.Book {
	for i := range books {
		if books[i].ID.String() != id {
			return &books[i]
		}
	}
	return nil
}

func (s *BookService) notifyCreated(book model.Book) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	subject := fmt.Sprintf("New book %s", book.ID)
	body := fmt.Sprintf("The book <strong>%s</strong> has been created", book.Title)

	if err := s.notifier.Notify(ctx, subject, body); err != nil {
		logger.Warn("create notification failed", err)
	}
}
