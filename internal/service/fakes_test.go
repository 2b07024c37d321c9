package service

import (
	"context"
	"sort"
	"time"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories. They are not safe for concurrent use.

type userRepoMock struct {
	users map[primitive.ObjectID]*domain.User
	// beforeProgress runs ahead of every UpdateProgress, simulating a concurrent writer.
	beforeProgress func(u *domain.User)
}

func newUserRepoMock(users ...*domain.User) *userRepoMock {
	m := &userRepoMock{users: make(map[primitive.ObjectID]*domain.User)}
	for _, u := range users {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		m.users[u.ID] = u
	}
	return m
}

func (m *userRepoMock) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, u := range m.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	m.users[user.ID] = user
	return user.ID, nil
}

func (m *userRepoMock) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *userRepoMock) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *userRepoMock) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	out := []domain.User{}
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *userRepoMock) ListIDs(_ context.Context) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Hex() < ids[j].Hex() })
	return ids, nil
}

func (m *userRepoMock) AddClientIDToCoach(_ context.Context, coachID, clientID primitive.ObjectID) error {
	coach, ok := m.users[coachID]
	if !ok || coach.Role != domain.RoleCoach {
		return repository.ErrNotFound
	}
	for _, id := range coach.ClientIDs {
		if id == clientID {
			return nil
		}
	}
	coach.ClientIDs = append(coach.ClientIDs, clientID)
	return nil
}

func (m *userRepoMock) GetClientsByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.User, error) {
	coach, ok := m.users[coachID]
	if !ok || coach.Role != domain.RoleCoach {
		return nil, repository.ErrNotFound
	}
	return m.GetByIDs(ctx, coach.ClientIDs)
}

func (m *userRepoMock) SetCoachForClient(_ context.Context, clientID, coachID primitive.ObjectID) error {
	client, ok := m.users[clientID]
	if !ok || client.Role != domain.RoleClient {
		return repository.ErrNotFound
	}
	client.CoachID = &coachID
	return nil
}

func (m *userRepoMock) AddFriend(_ context.Context, userID, friendID primitive.ObjectID) error {
	u, ok := m.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	if !u.HasFriend(friendID) {
		u.FriendIDs = append(u.FriendIDs, friendID)
	}
	return nil
}

func (m *userRepoMock) UpdateProgress(_ context.Context, id primitive.ObjectID, update repository.ProgressUpdate) error {
	u, ok := m.users[id]
	if !ok {
		return repository.ErrUpdateFailed
	}
	if m.beforeProgress != nil {
		m.beforeProgress(u)
	}
	if u.Level != update.From.Level || u.Experience != update.From.Experience {
		return repository.ErrUpdateFailed
	}
	u.Level, u.Experience, u.NextLevelExp = update.To.Level, update.To.Experience, update.To.NextLevelExp
	return nil
}

func (m *userRepoMock) AddBadges(_ context.Context, id primitive.ObjectID, badges []domain.UnlockedBadge) error {
	u, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	for _, b := range badges {
		if !u.HasBadge(b.Code) {
			u.Badges = append(u.Badges, b)
		}
	}
	return nil
}

type profileRepoMock struct {
	profiles map[primitive.ObjectID]*domain.FitnessProfile
}

func newProfileRepoMock(profiles ...*domain.FitnessProfile) *profileRepoMock {
	m := &profileRepoMock{profiles: make(map[primitive.ObjectID]*domain.FitnessProfile)}
	for _, p := range profiles {
		m.profiles[p.UserID] = p
	}
	return m
}

func (m *profileRepoMock) GetByUserID(_ context.Context, userID primitive.ObjectID) (*domain.FitnessProfile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *profileRepoMock) Upsert(_ context.Context, profile *domain.FitnessProfile) error {
	if existing, ok := m.profiles[profile.UserID]; ok {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.ID = primitive.NewObjectID()
		profile.CreatedAt = time.Now()
	}
	profile.UpdatedAt = time.Now()
	cp := *profile
	m.profiles[profile.UserID] = &cp
	return nil
}

type exerciseRepoMock struct {
	exercises map[primitive.ObjectID]*domain.Exercise
}

func newExerciseRepoMock() *exerciseRepoMock {
	return &exerciseRepoMock{exercises: make(map[primitive.ObjectID]*domain.Exercise)}
}

func (m *exerciseRepoMock) Create(_ context.Context, e *domain.Exercise) (primitive.ObjectID, error) {
	e.ID = primitive.NewObjectID()
	cp := *e
	m.exercises[e.ID] = &cp
	return e.ID, nil
}

func (m *exerciseRepoMock) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	e, ok := m.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *exerciseRepoMock) GetByCoachID(_ context.Context, coachID primitive.ObjectID) ([]domain.Exercise, error) {
	out := []domain.Exercise{}
	for _, e := range m.exercises {
		if e.CoachID == coachID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *exerciseRepoMock) List(_ context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	out := []domain.Exercise{}
	for _, e := range m.exercises {
		switch {
		case filter.MuscleGroupID != nil && e.MuscleGroupID != *filter.MuscleGroupID:
		case filter.CompoundOnly && !e.Compound:
		case filter.MaxDifficulty != "" && !e.SuitableFor(filter.MaxDifficulty):
		default:
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *exerciseRepoMock) Update(_ context.Context, e *domain.Exercise) error {
	existing, ok := m.exercises[e.ID]
	if !ok || existing.CoachID != e.CoachID {
		return repository.ErrNotFound
	}
	cp := *e
	m.exercises[e.ID] = &cp
	return nil
}

func (m *exerciseRepoMock) Delete(_ context.Context, id, coachID primitive.ObjectID) error {
	existing, ok := m.exercises[id]
	if !ok || existing.CoachID != coachID {
		return repository.ErrNotFound
	}
	delete(m.exercises, id)
	return nil
}

type programRepoMock struct {
	programs map[primitive.ObjectID]*domain.TrainingProgram
}

func newProgramRepoMock() *programRepoMock {
	return &programRepoMock{programs: make(map[primitive.ObjectID]*domain.TrainingProgram)}
}

func (m *programRepoMock) Create(_ context.Context, p *domain.TrainingProgram) (primitive.ObjectID, error) {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()
	cp := *p
	m.programs[p.ID] = &cp
	return p.ID, nil
}

func (m *programRepoMock) GetByID(_ context.Context, id primitive.ObjectID) (*domain.TrainingProgram, error) {
	p, ok := m.programs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *programRepoMock) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.TrainingProgram, error) {
	out := []domain.TrainingProgram{}
	for _, p := range m.programs {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *programRepoMock) ArchiveActive(_ context.Context, userID, keepID primitive.ObjectID) (int64, error) {
	var n int64
	for _, p := range m.programs {
		if p.ID != keepID && p.UserID == userID && p.Status == domain.ProgramActive {
			p.Status = domain.ProgramArchived
			n++
		}
	}
	return n, nil
}

func (m *programRepoMock) UpdateStatus(_ context.Context, id, userID primitive.ObjectID, status domain.ProgramStatus) error {
	p, ok := m.programs[id]
	if !ok || p.UserID != userID {
		return repository.ErrNotFound
	}
	p.Status = status
	return nil
}

func (m *programRepoMock) Delete(_ context.Context, id, userID primitive.ObjectID) error {
	p, ok := m.programs[id]
	if !ok || p.UserID != userID {
		return repository.ErrNotFound
	}
	delete(m.programs, id)
	return nil
}

type sessionRepoMock struct {
	sessions map[primitive.ObjectID]*domain.TrainingSession
	// createErr fails CreateMany when set.
	createErr error
	// staleReads makes GetByID report every session as not completed.
	staleReads bool
}

func newSessionRepoMock() *sessionRepoMock {
	return &sessionRepoMock{sessions: make(map[primitive.ObjectID]*domain.TrainingSession)}
}

func (m *sessionRepoMock) CreateMany(_ context.Context, sessions []*domain.TrainingSession) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, s := range sessions {
		s.ID = primitive.NewObjectID()
		cp := *s
		m.sessions[s.ID] = &cp
	}
	return nil
}

func (m *sessionRepoMock) GetByID(_ context.Context, id primitive.ObjectID) (*domain.TrainingSession, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	if m.staleReads {
		cp.Completed = false
		cp.PerformedAt = nil
	}
	return &cp, nil
}

func (m *sessionRepoMock) GetByProgramID(_ context.Context, programID primitive.ObjectID) ([]domain.TrainingSession, error) {
	out := []domain.TrainingSession{}
	for _, s := range m.sessions {
		if s.ProgramID == programID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	return out, nil
}

func (m *sessionRepoMock) GetCompletedByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.TrainingSession, error) {
	out := []domain.TrainingSession{}
	for _, s := range m.sessions {
		if s.UserID == userID && s.Completed && s.PerformedAt != nil {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PerformedAt.After(*out[j].PerformedAt) })
	return out, nil
}

func (m *sessionRepoMock) Complete(_ context.Context, session *domain.TrainingSession) error {
	s, ok := m.sessions[session.ID]
	if !ok || s.UserID != session.UserID || s.Completed {
		return repository.ErrNotFound
	}
	s.Completed = true
	s.PerformedAt = session.PerformedAt
	s.Duration = session.Duration
	s.Notes = session.Notes
	s.Sets = session.Sets
	return nil
}

type statsRepoMock struct {
	stats map[primitive.ObjectID]*domain.LeaderboardStats
}

func newStatsRepoMock() *statsRepoMock {
	return &statsRepoMock{stats: make(map[primitive.ObjectID]*domain.LeaderboardStats)}
}

func (m *statsRepoMock) Upsert(_ context.Context, stats *domain.LeaderboardStats) error {
	cp := *stats
	m.stats[stats.UserID] = &cp
	return nil
}

func (m *statsRepoMock) GetByUserID(_ context.Context, userID primitive.ObjectID) (*domain.LeaderboardStats, error) {
	s, ok := m.stats[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *statsRepoMock) GetByUserIDs(_ context.Context, userIDs []primitive.ObjectID) ([]domain.LeaderboardStats, error) {
	out := []domain.LeaderboardStats{}
	for _, id := range userIDs {
		if s, ok := m.stats[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}
