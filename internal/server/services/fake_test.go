package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/cryptox"
	"github.com/dmitrijs2005/notto/internal/dbx"
	"github.com/dmitrijs2005/notto/internal/server/models"
	"github.com/dmitrijs2005/notto/internal/server/repositories/notes"
	"github.com/dmitrijs2005/notto/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/notto/internal/server/repositories/users"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	byName    map[string]*models.User
	revision  map[string]int64
	createErr error
	getErr    error
	revErr    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byName: map[string]*models.User{}, revision: map[string]int64{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byName[u.Username]; ok {
		return nil, common.ErrUserAlreadyExists
	}
	u.ID = fmt.Sprintf("id-%s", u.Username)
	f.byName[u.Username] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) UpdatePassword(ctx context.Context, userID string, cred models.Credential, key cryptox.WrappedKey) error {
	for _, u := range f.byName {
		if u.ID == userID {
			u.Password = cred
			u.PasswordKey = key
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeUsersRepo) NextRevision(ctx context.Context, userID string) (int64, error) {
	if f.revErr != nil {
		return 0, f.revErr
	}
	f.revision[userID]++
	return f.revision[userID], nil
}

func (f *fakeUsersRepo) CurrentRevision(ctx context.Context, userID string) (int64, error) {
	return f.revision[userID], nil
}

type fakeNotesRepo struct {
	rows   map[int64]*models.Note
	nextID int64
	insErr error
}

func newFakeNotesRepo() *fakeNotesRepo { return &fakeNotesRepo{rows: map[int64]*models.Note{}} }

func (f *fakeNotesRepo) Insert(ctx context.Context, n *models.Note) (int64, error) {
	if f.insErr != nil {
		return 0, f.insErr
	}
	f.nextID++
	cp := *n
	cp.ID = f.nextID
	f.rows[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeNotesRepo) GetForUpdate(ctx context.Context, userID string, id int64) (*models.Note, error) {
	n, ok := f.rows[id]
	if !ok || n.UserID != userID {
		return nil, common.ErrorNotFound
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNotesRepo) Update(ctx context.Context, n *models.Note) error {
	if _, ok := f.rows[n.ID]; !ok {
		return common.ErrorNotFound
	}
	cp := *n
	f.rows[n.ID] = &cp
	return nil
}

func (f *fakeNotesRepo) SelectSince(ctx context.Context, userID string, since int64) ([]*models.Note, error) {
	var out []*models.Note
	for _, n := range f.rows {
		if n.UserID == userID && n.Revision > since {
			cp := *n
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revision < out[j].Revision })
	return out, nil
}

type fakeSessionsRepo struct {
	rows     map[string]*models.Session
	findErr  error
	purged   int64
	purgeErr error
}

func newFakeSessionsRepo() *fakeSessionsRepo {
	return &fakeSessionsRepo{rows: map[string]*models.Session{}}
}

func (f *fakeSessionsRepo) Create(ctx context.Context, s *models.Session) error {
	f.rows[s.ID] = s
	return nil
}

func (f *fakeSessionsRepo) Find(ctx context.Context, id string) (*models.Session, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	s, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return s, nil
}

func (f *fakeSessionsRepo) Revoke(ctx context.Context, id string, at time.Time) error {
	s, ok := f.rows[id]
	if !ok || s.RevokedAt != nil {
		return common.ErrorNotFound
	}
	s.RevokedAt = &at
	return nil
}

func (f *fakeSessionsRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	return f.purged, f.purgeErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	n *fakeNotesRepo
	s *fakeSessionsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{u: newFakeUsersRepo(), n: newFakeNotesRepo(), s: newFakeSessionsRepo()}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository { return m.u }
func (m *fakeRepoManager) Notes(db dbx.DBTX) notes.Repository { return m.n }
func (m *fakeRepoManager) Sessions(db dbx.DBTX) sessions.Repository { return m.s }

type fakeBlobs struct {
	objects map[string][]byte
	seq     int
	putErr  error
	deleted []string
}

func newFakeBlobs() *fakeBlobs { return &fakeBlobs{objects: map[string][]byte{}} }

func (f *fakeBlobs) Put(ctx context.Context, userID string, data []byte) (string, error) {
	if f.putErr != nil {
		return "", f.putErr
	}
	f.seq++
	key := fmt.Sprintf("notes/%s/%d", userID, f.seq)
	f.objects[key] = data
	return key, nil
}

func (f *fakeBlobs) Get(ctx context.Context, key string) ([]byte, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return data, nil
}

func (f *fakeBlobs) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	delete(f.objects, key)
	return nil
}
