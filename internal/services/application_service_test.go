package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"jobboard_backend/internal/email"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeJobRepo struct {
	jobs            map[string]*models.Job // keyed by slug
	findBySlugCalls int
}

func (f *fakeJobRepo) Create(ctx context.Context, job *models.Job) error { return nil }
func (f *fakeJobRepo) Update(ctx context.Context, job *models.Job) error { return nil }
func (f *fakeJobRepo) Delete(ctx context.Context, id string) error       { return nil }

func (f *fakeJobRepo) FindByID(ctx context.Context, id string) (*models.Job, error) {
	for _, j := range f.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeJobRepo) FindBySlug(ctx context.Context, slug string) (*models.Job, error) {
	f.findBySlugCalls++
	if j, ok := f.jobs[slug]; ok {
		return j, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeJobRepo) ListActiveCards(ctx context.Context) ([]models.JobCard, error) {
	return nil, nil
}

func (f *fakeJobRepo) ListAll(ctx context.Context) ([]models.Job, error) { return nil, nil }

type fakeAppRepo struct {
	created []*models.Application
	apps    []models.Application
}

func (f *fakeAppRepo) Create(ctx context.Context, app *models.Application) error {
	app.ID = fmt.Sprintf("app-%d", len(f.created)+1)
	f.created = append(f.created, app)
	return nil
}

func (f *fakeAppRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeAppRepo) FindByID(ctx context.Context, id string) (*models.Application, error) {
	return nil, repositories.ErrNotFound
}

func (f *fakeAppRepo) ListAll(ctx context.Context) ([]models.Application, error) {
	return f.apps, nil
}

func (f *fakeAppRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return repositories.ErrNotFound
}

type fakeStorage struct {
	saved    map[string][]byte
	saveErr  error
	signed   string
	expiries []time.Duration
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string][]byte), signed: "https://store.example/signed"}
}

func (f *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	data, _ := io.ReadAll(reader)
	f.saved[path] = data
	return nil
}

func (f *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "/files/" + path, nil
}

func (f *fakeStorage) GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	f.expiries = append(f.expiries, expiry)
	return f.signed, nil
}

type fakeProvider struct {
	sent chan *email.Email
	err  error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{sent: make(chan *email.Email, 1)}
}

func (f *fakeProvider) Send(e *email.Email) error {
	if f.err != nil {
		return f.err
	}
	f.sent <- e
	return nil
}

func (f *fakeProvider) Validate() error { return nil }
func (f *fakeProvider) Close() error    { return nil }

// --- helpers ---

func newTestService(jobRepo *fakeJobRepo, appRepo *fakeAppRepo, store *fakeStorage, provider email.Provider) ApplicationService {
	return NewApplicationService(appRepo, jobRepo, store, provider, ApplicationConfig{
		FromEmail:         "jobs@example.com",
		ToEmail:           "recruiting@example.com",
		MaxUploadSize:     1 << 20,
		AllowedExtensions: []string{".pdf", ".doc", ".docx"},
		SignedURLExpires:  60,
		StorageConfigured: true,
	})
}

func validSubmitRequest() *dto.SubmitApplicationRequest {
	return &dto.SubmitApplicationRequest{
		FullName:         "Jane Applicant",
		Email:            "jane@example.com",
		PhoneNumber:      "+1 555 0100",
		Location:         "Berlin",
		HowHeard:         "linkedin",
		WhyInterested:    "I like the mission.",
		Experience:       "Five years of support work.",
		AgreeDataSharing: true,
		Resume: &dto.FileUpload{
			Filename:    "resume.pdf",
			Size:        128,
			ContentType: "application/pdf",
			Reader:      strings.NewReader("resume-bytes"),
		},
	}
}

func activeJob() *models.Job {
	j := &models.Job{
		Title:  "Support Engineer",
		Slug:   "support-engineer",
		Status: models.JobStatusActive,
	}
	j.ID = "job-1"
	return j
}

// --- Submit ---

func TestSubmit_RejectsWithoutConsentBeforeAnyStoreCall(t *testing.T) {
	t.Parallel()

	jobRepo := &fakeJobRepo{jobs: map[string]*models.Job{"support-engineer": activeJob()}}
	appRepo := &fakeAppRepo{}
	store := newFakeStorage()
	svc := newTestService(jobRepo, appRepo, store, newFakeProvider())

	req := validSubmitRequest()
	req.AgreeDataSharing = false

	_, err := svc.Submit(context.Background(), "support-engineer", req)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	assert.Equal(t, msgConsentRequired, appErr.Details)

	assert.Zero(t, jobRepo.findBySlugCalls, "no store read may happen before consent")
	assert.Empty(t, store.saved, "no upload may happen before consent")
	assert.Empty(t, appRepo.created, "no insert may happen before consent")
}

func TestSubmit_RejectsWithoutResume(t *testing.T) {
	t.Parallel()

	jobRepo := &fakeJobRepo{jobs: map[string]*models.Job{"support-engineer": activeJob()}}
	appRepo := &fakeAppRepo{}
	store := newFakeStorage()
	svc := newTestService(jobRepo, appRepo, store, newFakeProvider())

	req := validSubmitRequest()
	req.Resume = nil

	_, err := svc.Submit(context.Background(), "support-engineer", req)
	require.Error(t, err)

	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	assert.Zero(t, jobRepo.findBySlugCalls)
	assert.Empty(t, store.saved)
	assert.Empty(t, appRepo.created)
}

func TestSubmit_UnknownSlugIsNotFound(t *testing.T) {
	t.Parallel()

	jobRepo := &fakeJobRepo{jobs: map[string]*models.Job{}}
	svc := newTestService(jobRepo, &fakeAppRepo{}, newFakeStorage(), newFakeProvider())

	_, err := svc.Submit(context.Background(), "no-such-job", validSubmitRequest())
	require.Error(t, err)

	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestSubmit_FullPipeline(t *testing.T) {
	t.Parallel()

	jobRepo := &fakeJobRepo{jobs: map[string]*models.Job{"support-engineer": activeJob()}}
	appRepo := &fakeAppRepo{}
	store := newFakeStorage()
	provider := newFakeProvider()
	svc := newTestService(jobRepo, appRepo, store, provider)

	req := validSubmitRequest()
	req.CoverLetter = &dto.FileUpload{
		Filename:    "cover.docx",
		Size:        64,
		ContentType: "application/msword",
		Reader:      strings.NewReader("cover-bytes"),
	}

	app, err := svc.Submit(context.Background(), "support-engineer", req)
	require.NoError(t, err)
	require.NotNil(t, app)

	assert.Equal(t, "job-1", app.JobID)
	assert.Equal(t, "Support Engineer", app.Position)
	assert.Equal(t, models.ApplicationStatusSubmitted, app.Status)
	require.NotNil(t, app.CoverLetterPath)

	pathPattern := regexp.MustCompile(`^applications/support-engineer/\d+-\d+\.pdf$`)
	assert.Regexp(t, pathPattern, app.ResumePath)
	assert.Regexp(t, `^applications/support-engineer/\d+-\d+\.docx$`, *app.CoverLetterPath)

	assert.Len(t, store.saved, 2)
	require.Len(t, appRepo.created, 1)

	// notification goes out asynchronously, best-effort
	select {
	case msg := <-provider.sent:
		assert.Equal(t, "jobs@example.com", msg.From)
		assert.Equal(t, []string{"recruiting@example.com"}, msg.To)
		assert.Contains(t, msg.Subject, "Support Engineer")
		assert.Contains(t, msg.Body, "Jane Applicant")
	case <-time.After(2 * time.Second):
		t.Fatal("expected the notification email to be sent")
	}
}

func TestSubmit_UploadFailureAbortsWithoutInsert(t *testing.T) {
	t.Parallel()

	jobRepo := &fakeJobRepo{jobs: map[string]*models.Job{"support-engineer": activeJob()}}
	appRepo := &fakeAppRepo{}
	store := newFakeStorage()
	store.saveErr = fmt.Errorf("bucket unavailable")
	svc := newTestService(jobRepo, appRepo, store, newFakeProvider())

	_, err := svc.Submit(context.Background(), "support-engineer", validSubmitRequest())
	require.Error(t, err)

	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeStore, appErr.Code)
	assert.Contains(t, appErr.Message, "bucket unavailable")
	assert.Empty(t, appRepo.created, "insert must not happen after a failed upload")
}

func TestSubmit_NotificationFailureDoesNotFailSubmission(t *testing.T) {
	t.Parallel()

	jobRepo := &fakeJobRepo{jobs: map[string]*models.Job{"support-engineer": activeJob()}}
	appRepo := &fakeAppRepo{}
	provider := newFakeProvider()
	provider.err = fmt.Errorf("provider down")
	svc := newTestService(jobRepo, appRepo, newFakeStorage(), provider)

	app, err := svc.Submit(context.Background(), "support-engineer", validSubmitRequest())
	require.NoError(t, err)
	assert.NotNil(t, app)
	assert.Len(t, appRepo.created, 1)
}

func TestSubmit_RejectsDisallowedExtension(t *testing.T) {
	t.Parallel()

	jobRepo := &fakeJobRepo{jobs: map[string]*models.Job{"support-engineer": activeJob()}}
	appRepo := &fakeAppRepo{}
	store := newFakeStorage()
	svc := newTestService(jobRepo, appRepo, store, newFakeProvider())

	req := validSubmitRequest()
	req.Resume.Filename = "resume.exe"

	_, err := svc.Submit(context.Background(), "support-engineer", req)
	require.Error(t, err)

	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	assert.Zero(t, jobRepo.findBySlugCalls)
	assert.Empty(t, store.saved)
}

// --- Filter / Export ---

func sampleApplications() []models.Application {
	mk := func(id, name, mail, position, status string) models.Application {
		app := models.Application{
			FullName: name,
			Email:    mail,
			Position: position,
			Status:   status,
		}
		app.ID = id
		return app
	}
	return []models.Application{
		mk("1", "Jane Applicant", "jane@example.com", "Support Engineer", "submitted"),
		mk("2", "John Smith", "john@corp.io", "Support Engineer", "reviewing"),
		mk("3", "Ada Lovelace", "ada@history.org", "Backend Developer", "accepted"),
		mk("4", "Grace Hopper", "grace@navy.mil", "Backend Developer", "submitted"),
	}
}

func TestFilterApplications_SearchIsCaseInsensitiveOverThreeFields(t *testing.T) {
	t.Parallel()

	apps := sampleApplications()

	byEmail := FilterApplications(apps, dto.ApplicationFilter{Search: "JANE@EXAMPLE"})
	require.Len(t, byEmail, 1)
	assert.Equal(t, "1", byEmail[0].ID)

	byName := FilterApplications(apps, dto.ApplicationFilter{Search: "hopper"})
	require.Len(t, byName, 1)
	assert.Equal(t, "4", byName[0].ID)

	byPosition := FilterApplications(apps, dto.ApplicationFilter{Search: "backend"})
	assert.Len(t, byPosition, 2)
}

func TestFilterApplications_StatusComposesWithSearch(t *testing.T) {
	t.Parallel()

	apps := sampleApplications()

	got := FilterApplications(apps, dto.ApplicationFilter{Search: "support", Status: "reviewing"})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	all := FilterApplications(apps, dto.ApplicationFilter{Status: "all"})
	assert.Len(t, all, 4, `status "all" imposes no constraint`)

	none := FilterApplications(apps, dto.ApplicationFilter{Search: "support", Status: "accepted"})
	assert.Empty(t, none)
}

func TestExport_RoundTripsFilteredSetByID(t *testing.T) {
	t.Parallel()

	appRepo := &fakeAppRepo{apps: sampleApplications()}
	svc := newTestService(&fakeJobRepo{}, appRepo, newFakeStorage(), newFakeProvider())

	filtered, err := svc.Search(context.Background(), dto.ApplicationFilter{Status: "submitted"})
	require.NoError(t, err)
	require.Len(t, filtered, 2)

	out, err := svc.Export(filtered)
	require.NoError(t, err)

	var parsed []models.Application
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	require.Len(t, parsed, len(filtered))
	for i := range filtered {
		assert.Equal(t, filtered[i].ID, parsed[i].ID)
	}
}

// --- Signed URLs ---

func TestSignedURL_UsesDefaultExpiry(t *testing.T) {
	t.Parallel()

	store := newFakeStorage()
	svc := newTestService(&fakeJobRepo{}, &fakeAppRepo{}, store, newFakeProvider())

	url, err := svc.SignedURL(context.Background(), "applications/acme/123-456.pdf", 0)
	require.NoError(t, err)
	assert.Equal(t, "https://store.example/signed", url)
	require.Len(t, store.expiries, 1)
	assert.Equal(t, 60*time.Second, store.expiries[0])
}

func TestSignedURL_HonorsRequestedExpiry(t *testing.T) {
	t.Parallel()

	store := newFakeStorage()
	svc := newTestService(&fakeJobRepo{}, &fakeAppRepo{}, store, newFakeProvider())

	_, err := svc.SignedURL(context.Background(), "applications/acme/123-456.pdf", 120)
	require.NoError(t, err)
	require.Len(t, store.expiries, 1)
	assert.Equal(t, 120*time.Second, store.expiries[0])
}

func TestSignedURL_MissingStorageConfig(t *testing.T) {
	t.Parallel()

	svc := NewApplicationService(&fakeAppRepo{}, &fakeJobRepo{}, newFakeStorage(), newFakeProvider(), ApplicationConfig{
		SignedURLExpires:  60,
		StorageConfigured: false,
	})

	_, err := svc.SignedURL(context.Background(), "applications/acme/123-456.pdf", 60)
	require.Error(t, err)

	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeConfiguration, appErr.Code)
}

func TestObjectPath_Format(t *testing.T) {
	t.Parallel()

	path := objectPath("applications", "support-engineer", "My Resume.PDF")
	assert.Regexp(t, `^applications/support-engineer/\d+-\d+\.PDF$`, path)

	noExt := objectPath("applications", "support-engineer", "resume")
	assert.Regexp(t, `^applications/support-engineer/\d+-\d+$`, noExt)
}
