package usecase_test

import (
	"context"
	"testing"
	"time"

	"remote-jobs-backend/internal/domain"
	"remote-jobs-backend/internal/scraper"
	"remote-jobs-backend/internal/usecase"
	"remote-jobs-backend/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	logger.Init("error")
}

// Mock Repositories
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Merge(ctx context.Context, jobs []domain.Job) error {
	return m.Called(ctx, jobs).Error(0)
}
func (m *MockJobRepo) List(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) Search(ctx context.Context, keywords []string, limit int) ([]domain.Job, error) {
	args := m.Called(ctx, keywords, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}
func (m *MockProfileRepo) Save(ctx context.Context, update domain.ProfileUpdate) (*domain.UserProfile, error) {
	args := m.Called(ctx, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockFavoriteRepo struct {
	mock.Mock
}

func (m *MockFavoriteRepo) Create(ctx context.Context, fav *domain.FavoriteJob) error {
	return m.Called(ctx, fav).Error(0)
}
func (m *MockFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]domain.FavoriteJob, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FavoriteJob), args.Error(1)
}
func (m *MockFavoriteRepo) GetByID(ctx context.Context, userID, id string) (*domain.FavoriteJob, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FavoriteJob), args.Error(1)
}
func (m *MockFavoriteRepo) Update(ctx context.Context, userID, id string, update domain.FavoriteUpdate) (*domain.FavoriteJob, error) {
	args := m.Called(ctx, userID, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FavoriteJob), args.Error(1)
}
func (m *MockFavoriteRepo) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

func aiProfile() *domain.UserProfile {
	return &domain.UserProfile{
		ID:     "default",
		Skills: []string{"AI & Automation"},
	}
}

func newJobUsecase(jobRepo *MockJobRepo, profileRepo *MockProfileRepo) domain.JobUsecase {
	agg := scraper.NewAggregator(scraper.NewCurated())
	return usecase.NewJobUsecase(jobRepo, profileRepo, agg)
}

func TestRecentScoresAgainstProfile(t *testing.T) {
	mockJobs := new(MockJobRepo)
	mockProfile := new(MockProfileRepo)
	uc := newJobUsecase(mockJobs, mockProfile)

	now := time.Now()
	stored := []domain.Job{
		{ID: "1", Title: "Gardener", Description: "plants", Posted: now},
		{ID: "2", Title: "AI Engineer", Description: "chatgpt workflows", Posted: now.Add(-time.Minute), Remote: true},
	}
	mockJobs.On("List", mock.Anything, 25, 0).Return(stored, nil)
	mockProfile.On("Get", mock.Anything).Return(aiProfile(), nil)

	jobs, err := uc.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	// best match first, even when the store returned it second
	assert.Equal(t, "2", jobs[0].ID)
	assert.Greater(t, jobs[0].MatchScore, jobs[1].MatchScore)
	assert.NotEmpty(t, jobs[0].Summary)
	assert.Contains(t, jobs[0].Summary, "Match: ")
}

func TestTopRanksByScore(t *testing.T) {
	mockJobs := new(MockJobRepo)
	mockProfile := new(MockProfileRepo)
	uc := newJobUsecase(mockJobs, mockProfile)

	now := time.Now()
	stored := []domain.Job{
		{ID: "weak", Title: "Gardener", Posted: now},
		{ID: "strong", Title: "AI Engineer", Description: "automation with chatgpt", Posted: now.Add(-time.Minute), Remote: true},
	}
	mockJobs.On("List", mock.Anything, 100, 0).Return(stored, nil)
	mockProfile.On("Get", mock.Anything).Return(aiProfile(), nil)

	jobs, err := uc.Top(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "strong", jobs[0].ID)
}

func TestTopCapsAtTwentyFive(t *testing.T) {
	mockJobs := new(MockJobRepo)
	mockProfile := new(MockProfileRepo)
	uc := newJobUsecase(mockJobs, mockProfile)

	now := time.Now()
	stored := make([]domain.Job, 40)
	for i := range stored {
		stored[i] = domain.Job{ID: string(rune('a' + i)), Title: "AI Engineer", Posted: now}
	}
	mockJobs.On("List", mock.Anything, 100, 0).Return(stored, nil)
	mockProfile.On("Get", mock.Anything).Return(aiProfile(), nil)

	jobs, err := uc.Top(context.Background())
	require.NoError(t, err)
	assert.Len(t, jobs, 25)
}

func TestSearchFallsBackToProfileSkills(t *testing.T) {
	mockJobs := new(MockJobRepo)
	mockProfile := new(MockProfileRepo)
	uc := newJobUsecase(mockJobs, mockProfile)

	profile := &domain.UserProfile{
		ID:     "default",
		Skills: []string{"a", "b", "c", "d", "e", "f", "g"},
	}
	mockProfile.On("Get", mock.Anything).Return(profile, nil)
	mockJobs.On("Search", mock.Anything, []string{"a", "b", "c", "d", "e"}, 100).
		Return([]domain.Job{}, nil)

	_, err := uc.Search(context.Background(), domain.SearchFilters{})
	require.NoError(t, err)
	mockJobs.AssertExpectations(t)
}

func TestSearchExplicitLimitBoundsFetch(t *testing.T) {
	mockJobs := new(MockJobRepo)
	mockProfile := new(MockProfileRepo)
	uc := newJobUsecase(mockJobs, mockProfile)

	mockJobs.On("Search", mock.Anything, []string{"ai"}, 10).
		Return([]domain.Job{}, nil)
	mockProfile.On("Get", mock.Anything).Return(aiProfile(), nil)

	_, err := uc.Search(context.Background(), domain.SearchFilters{
		Skills: []string{"ai"},
		Limit:  10,
	})
	require.NoError(t, err)
	mockJobs.AssertExpectations(t)
}

func TestSearchFiltersBySource(t *testing.T) {
	mockJobs := new(MockJobRepo)
	mockProfile := new(MockProfileRepo)
	uc := newJobUsecase(mockJobs, mockProfile)

	now := time.Now()
	found := []domain.Job{
		{ID: "1", Title: "AI Engineer", Source: "RemoteOK", Posted: now},
		{ID: "2", Title: "AI Engineer", Source: "Indeed", Posted: now},
	}
	mockJobs.On("Search", mock.Anything, []string{"ai"}, 100).Return(found, nil)
	mockProfile.On("Get", mock.Anything).Return(aiProfile(), nil)

	jobs, err := uc.Search(context.Background(), domain.SearchFilters{
		Skills:  []string{"ai"},
		Sources: []string{"Indeed"},
	})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "2", jobs[0].ID)
}

func TestSearchFiltersByMinSalary(t *testing.T) {
	mockJobs := new(MockJobRepo)
	mockProfile := new(MockProfileRepo)
	uc := newJobUsecase(mockJobs, mockProfile)

	now := time.Now()
	found := []domain.Job{
		{ID: "cheap", Title: "AI Engineer", Salary: "$30/hr", Posted: now},
		{ID: "rich", Title: "AI Engineer", Salary: "$80-$100/hr", Posted: now},
		{ID: "unknown", Title: "AI Engineer", Posted: now},
	}
	mockJobs.On("Search", mock.Anything, []string{"ai"}, 100).Return(found, nil)
	mockProfile.On("Get", mock.Anything).Return(aiProfile(), nil)

	jobs, err := uc.Search(context.Background(), domain.SearchFilters{
		Skills:    []string{"ai"},
		MinSalary: 50,
	})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "rich", jobs[0].ID)
}

func TestSearchSortByRecent(t *testing.T) {
	mockJobs := new(MockJobRepo)
	mockProfile := new(MockProfileRepo)
	uc := newJobUsecase(mockJobs, mockProfile)

	now := time.Now()
	found := []domain.Job{
		{ID: "old", Title: "AI Engineer", Description: "chatgpt automation", Posted: now.Add(-48 * time.Hour), Remote: true},
		{ID: "new", Title: "Gardener", Posted: now},
	}
	mockJobs.On("Search", mock.Anything, []string{"ai"}, 100).Return(found, nil)
	mockProfile.On("Get", mock.Anything).Return(aiProfile(), nil)

	jobs, err := uc.Search(context.Background(), domain.SearchFilters{
		Skills: []string{"ai"},
		SortBy: "recent",
	})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "new", jobs[0].ID, "recent sort wins over match score")
}

func TestSearchSortBySalary(t *testing.T) {
	mockJobs := new(MockJobRepo)
	mockProfile := new(MockProfileRepo)
	uc := newJobUsecase(mockJobs, mockProfile)

	now := time.Now()
	found := []domain.Job{
		{ID: "low", Title: "AI Engineer", Salary: "$40/hr", Posted: now},
		{ID: "high", Title: "AI Engineer", Salary: "$120/hr", Posted: now},
		{ID: "none", Title: "AI Engineer", Posted: now},
	}
	mockJobs.On("Search", mock.Anything, []string{"ai"}, 100).Return(found, nil)
	mockProfile.On("Get", mock.Anything).Return(aiProfile(), nil)

	jobs, err := uc.Search(context.Background(), domain.SearchFilters{
		Skills: []string{"ai"},
		SortBy: "salary",
	})
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "high", jobs[0].ID)
	assert.Equal(t, "none", jobs[2].ID)
}

func TestRefreshMergesAndSummarizes(t *testing.T) {
	mockJobs := new(MockJobRepo)
	mockProfile := new(MockProfileRepo)
	uc := newJobUsecase(mockJobs, mockProfile)

	mockProfile.On("Get", mock.Anything).Return(aiProfile(), nil)
	mockJobs.On("Merge", mock.Anything, mock.AnythingOfType("[]domain.Job")).Return(nil)

	jobs, total, sources, err := uc.Refresh(context.Background(), nil)
	require.NoError(t, err)

	// the curated fallback always yields something
	assert.Greater(t, total, 0)
	assert.NotEmpty(t, jobs)
	assert.LessOrEqual(t, len(jobs), 25)
	require.Len(t, sources, 1)
	assert.Equal(t, "Curated", sources[0].Name)
	assert.Equal(t, total, sources[0].Count)
	mockJobs.AssertExpectations(t)
}

func TestProfileUpdateRejectsNegativeRate(t *testing.T) {
	mockProfile := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockProfile)

	bad := -5
	_, err := uc.Update(context.Background(), domain.ProfileUpdate{MinHourlyRate: &bad})
	assert.Error(t, err)
	mockProfile.AssertNotCalled(t, "Save")
}

func TestAddSkillsDeduplicates(t *testing.T) {
	mockProfile := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockProfile)

	mockProfile.On("Get", mock.Anything).Return(&domain.UserProfile{
		Skills: []string{"AI & Automation"},
	}, nil)
	mockProfile.On("Save", mock.Anything, domain.ProfileUpdate{
		Skills: []string{"AI & Automation", "Copywriting"},
	}).Return(&domain.UserProfile{Skills: []string{"AI & Automation", "Copywriting"}}, nil)

	profile, err := uc.AddSkills(context.Background(), []string{"ai & automation", "Copywriting", " "})
	require.NoError(t, err)
	assert.Equal(t, []string{"AI & Automation", "Copywriting"}, profile.Skills)
	mockProfile.AssertExpectations(t)
}

func TestRemoveSkillNotFound(t *testing.T) {
	mockProfile := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockProfile)

	mockProfile.On("Get", mock.Anything).Return(&domain.UserProfile{
		Skills: []string{"Copywriting"},
	}, nil)

	_, err := uc.RemoveSkill(context.Background(), "AI & Automation")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRegisterIssuesValidToken(t *testing.T) {
	mockUsers := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockUsers, "test-secret")

	mockUsers.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, token, err := uc.Register(context.Background(), "Someone@Example.com", "longenough")
	require.NoError(t, err)
	assert.Equal(t, "someone@example.com", user.Email)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID, claims["sub"])
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	mockUsers := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockUsers, "test-secret")

	_, _, err := uc.Register(context.Background(), "a@b.com", "short")
	assert.Error(t, err)
	mockUsers.AssertNotCalled(t, "Create")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	mockUsers := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockUsers, "test-secret")

	mockUsers.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

	_, _, err := uc.Register(context.Background(), "a@b.com", "longenough")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestLoginWrongPassword(t *testing.T) {
	mockUsers := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockUsers, "test-secret")

	hash, _ := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.MinCost)
	mockUsers.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.User{
		ID: "u1", Email: "a@b.com", PasswordHash: string(hash),
	}, nil)

	_, _, err := uc.Login(context.Background(), "a@b.com", "wrongpassword")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email or password")
}

func TestLoginUnknownEmailIsIndistinct(t *testing.T) {
	mockUsers := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockUsers, "test-secret")

	mockUsers.On("GetByEmail", mock.Anything, "ghost@b.com").Return(nil, domain.ErrNotFound)

	_, _, err := uc.Login(context.Background(), "ghost@b.com", "whatever")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email or password")
}

func TestFavoriteAddDuplicate(t *testing.T) {
	mockFavs := new(MockFavoriteRepo)
	uc := usecase.NewFavoriteUsecase(mockFavs)

	mockFavs.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

	err := uc.Add(context.Background(), "u1", &domain.FavoriteJob{Title: "AI Engineer", URL: "https://jobs/1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already in favorites")
}

func TestFavoriteAddAssignsOwnership(t *testing.T) {
	mockFavs := new(MockFavoriteRepo)
	uc := usecase.NewFavoriteUsecase(mockFavs)

	var created *domain.FavoriteJob
	mockFavs.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*domain.FavoriteJob)
	}).Return(nil)

	err := uc.Add(context.Background(), "u1", &domain.FavoriteJob{Title: "AI Engineer", URL: "https://jobs/1"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "u1", created.UserID)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}
