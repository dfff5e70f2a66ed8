package service

import (
	"context"
	"io"
	"sort"

	"github.com/google/uuid"

	"github.com/vcaron/dialogue/internal/domain"
	"github.com/vcaron/dialogue/internal/repository"
)

// --- fakes shared by the service tests ---

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	u, err := f.GetByUsername(ctx, username)
	return u != nil, err
}

func (f *fakeUserRepo) ListOthers(_ context.Context, exceptID uuid.UUID) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.users {
		if u.ID != exceptID {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

type fakeConversationRepo struct {
	convs []*domain.Conversation
	// raceWinner, when set, makes Create fail with ErrDuplicateConversation
	// as if a concurrent insert had just won, registering the winning row.
	raceWinner *domain.Conversation
}

func (f *fakeConversationRepo) Create(_ context.Context, conv *domain.Conversation) error {
	if f.raceWinner != nil {
		f.convs = append(f.convs, f.raceWinner)
		f.raceWinner = nil
		return repository.ErrDuplicateConversation
	}
	for _, c := range f.convs {
		if c.UserAID == conv.UserAID && c.UserBID == conv.UserBID {
			return repository.ErrDuplicateConversation
		}
	}
	c := *conv
	f.convs = append(f.convs, &c)
	return nil
}

func (f *fakeConversationRepo) GetByUsers(_ context.Context, userAID, userBID uuid.UUID) (*domain.Conversation, error) {
	for _, c := range f.convs {
		if c.UserAID == userAID && c.UserBID == userBID {
			out := *c
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeConversationRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Conversation, error) {
	for _, c := range f.convs {
		if c.ID == id {
			out := *c
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeConversationRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Conversation, error) {
	var out []domain.Conversation
	for _, c := range f.convs {
		if c.HasParticipant(userID) {
			out = append(out, *c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type fakeMessageRepo struct {
	messages []*domain.Message
}

func (f *fakeMessageRepo) Create(_ context.Context, msg *domain.Message) error {
	m := *msg
	f.messages = append(f.messages, &m)
	return nil
}

func (f *fakeMessageRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Message, error) {
	for _, m := range f.messages {
		if m.ID == id {
			out := *m
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeMessageRepo) ListByConversation(_ context.Context, conversationID uuid.UUID) ([]domain.Message, error) {
	var out []domain.Message
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			out = append(out, *m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeMessageRepo) ListPhotos(ctx context.Context, conversationID uuid.UUID) ([]domain.Photo, error) {
	messages, _ := f.ListByConversation(ctx, conversationID)
	var out []domain.Photo
	for _, m := range messages {
		if m.Photo != nil {
			out = append(out, *m.Photo)
		}
	}
	return out, nil
}

type fakePhotoRepo struct {
	photos    []*domain.Photo
	createErr error
}

func (f *fakePhotoRepo) Create(_ context.Context, photo *domain.Photo) error {
	if f.createErr != nil {
		return f.createErr
	}
	p := *photo
	f.photos = append(f.photos, &p)
	return nil
}

func (f *fakePhotoRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Photo, error) {
	for _, p := range f.photos {
		if p.ID == id {
			out := *p
			return &out, nil
		}
	}
	return nil, nil
}

type fakeIngestor struct {
	photo *domain.Photo
	err   error
	calls int
}

func (f *fakeIngestor) Ingest(_ context.Context, _ io.Reader, _ int64, _, _ string, _ uuid.UUID) (*domain.Photo, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.photo, nil
}

type fakeBlobStore struct {
	puts map[string][]byte
	err  error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{puts: make(map[string][]byte)}
}

func (f *fakeBlobStore) Put(_ context.Context, key string, content io.Reader) error {
	if f.err != nil {
		return f.err
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	f.puts[key] = data
	return nil
}
