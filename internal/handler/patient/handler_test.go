package patient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	"github.com/jwalitptl/clinic-api/internal/service/patient"
	"github.com/jwalitptl/clinic-api/pkg/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validator.RegisterCustomRules(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakePatientRepo struct {
	patients []*model.Patient
}

func (f *fakePatientRepo) Create(ctx context.Context, p *model.Patient) (int64, error) {
	p.ID = int64(len(f.patients) + 1)
	f.patients = append(f.patients, p)
	return p.ID, nil
}

func (f *fakePatientRepo) GetByMobile(ctx context.Context, mobile string) (*model.Patient, error) {
	return nil, repository.ErrNotFound
}

func (f *fakePatientRepo) FindByNameAndMobile(ctx context.Context, name, mobile string) (*model.Patient, error) {
	for _, p := range f.patients {
		if p.Name == name && p.Mobile == mobile {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func setupRouter() (*gin.Engine, *fakePatientRepo) {
	repo := &fakePatientRepo{}
	h := NewHandler(patient.NewService(repo))
	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api"))
	return engine, repo
}

func doRegister(engine *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/patients/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"name":   "Asha",
		"age":    30,
		"gender": "F",
		"mobile": "9990001111",
	}
}

func TestRegisterPatient(t *testing.T) {
	engine, repo := setupRouter()

	w := doRegister(engine, validBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			PatientID int64 `json:"patientId"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, int64(1), resp.Data.PatientID)
	assert.Len(t, repo.patients, 1)
}

func TestRegisterPatientDuplicate(t *testing.T) {
	engine, repo := setupRouter()

	w := doRegister(engine, validBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRegister(engine, validBody())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, repo.patients, 1)
}

func TestRegisterPatientMissingFields(t *testing.T) {
	engine, repo := setupRouter()

	body := validBody()
	delete(body, "mobile")

	w := doRegister(engine, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.patients)
}

func TestRegisterPatientBadMobile(t *testing.T) {
	engine, repo := setupRouter()

	body := validBody()
	body["mobile"] = "not-a-number"

	w := doRegister(engine, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.patients)
}
