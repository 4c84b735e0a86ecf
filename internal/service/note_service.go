package service

import (
	"context"
	"strings"
	"time"

	"notes-api/internal/dto"
	"notes-api/internal/entity"
	"notes-api/internal/pkg/serverutils"
	"notes-api/internal/repository/contract"
	"notes-api/internal/repository/specification"
)

type INoteService interface {
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	List(ctx context.Context) ([]dto.NoteResponse, error)
}

type noteService struct {
	noteRepo contract.NoteRepository
}

func NewNoteService(noteRepo contract.NoteRepository) INoteService {
	return &noteService{
		noteRepo: noteRepo,
	}
}

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, serverutils.ValidationError("Content cannot be empty")
	}

	note := entity.Note{
		Content: content,
	}
	if err := s.noteRepo.Create(ctx, &note); err != nil {
		return nil, serverutils.InternalError(err)
	}

	return &dto.CreateNoteResponse{
		Id:      note.Id,
		Content: note.Content,
	}, nil
}

func (s *noteService) List(ctx context.Context) ([]dto.NoteResponse, error) {
	notes, err := s.noteRepo.FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, serverutils.InternalError(err)
	}

	res := make([]dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		res = append(res, dto.NoteResponse{
			Id:        n.Id,
			Content:   n.Content,
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return res, nil
}
