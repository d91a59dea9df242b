//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"salon-site/internal/domain/site"
	"salon-site/internal/handler/api"
	resdto "salon-site/internal/handler/dto/response"
	"salon-site/internal/handler/httperr"
	"salon-site/internal/handler/middleware"
	"salon-site/internal/pkg/config"
	"salon-site/internal/usecase/commands"
	"salon-site/internal/usecase/queries"
	"salon-site/internal/usecase/shared"
	"salon-site/tests/common/builder"
	"salon-site/tests/common/httptest"
	"salon-site/tests/common/testutil"
	commandsmock "salon-site/tests/mock/commands"
	queriesmock "salon-site/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testSetupKey = "test-setup-key"

type SiteHandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSiteCommands
	mockQueries  *queriesmock.MockSiteQueries
	router       *gin.Engine
}

func (s *SiteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSiteCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSiteQueries(s.mockCtrl)

	handler := api.NewSiteHandler(s.mockCommands, s.mockQueries)
	setupKey := middleware.NewSetupKeyMiddleware(config.Config{
		Setup: config.SetupConfig{AccessKey: testSetupKey},
	})

	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())
	s.router.POST("/api/sites", setupKey.RequireSetupKey(), handler.Create)
	s.router.GET("/api/sites/:slug", handler.GetBySlug)
}

func (s *SiteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSiteHandlerSuite(t *testing.T) {
	suite.Run(t, new(SiteHandlerTestSuite))
}

func setupKeyHeader() map[string]string {
	return map[string]string{"X-Setup-Key": testSetupKey}
}

func (s *SiteHandlerTestSuite) TestCreate() {
	s.Run("成功: 201とLocationヘッダを返す", func() {
		req := builder.NewSiteBuilder().BuildCreateRequestDTO()
		newID := uuid.New()

		s.mockCommands.EXPECT().CreateSite(gomock.Any(), gomock.Any()).
			Return(&commands.CreateSiteResult{ID: newID}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/sites", req, setupKeyHeader())

		var created resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.Equal(newID, created.ID)
		s.Equal("/api/sites/"+newID.String(), w.Header().Get("Location"))
	})

	s.Run("セットアップキー欠落は401", func() {
		req := builder.NewSiteBuilder().BuildCreateRequestDTO()

		s.mockCommands.EXPECT().CreateSite(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/sites", req, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, httperr.CodeUnauthorized)
	})

	s.Run("セットアップキー不一致は401", func() {
		req := builder.NewSiteBuilder().BuildCreateRequestDTO()

		s.mockCommands.EXPECT().CreateSite(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/sites", req,
			map[string]string{"X-Setup-Key": "wrong-key"})
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, httperr.CodeUnauthorized)
	})

	s.Run("slug欠落はバインドで400になる", func() {
		body := testutil.DtoMap(s.T(), builder.NewSiteBuilder().BuildCreateRequestDTO(),
			testutil.Field("slug", nil))

		s.mockCommands.EXPECT().CreateSite(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/sites", body, setupKeyHeader())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, httperr.CodeValidationError)
		httptest.AssertFieldError(s.T(), w, "slug")
	})

	s.Run("slug形式不正は400", func() {
		req := builder.NewSiteBuilder().WithSlug("My Salon!").BuildCreateRequestDTO()

		s.mockCommands.EXPECT().CreateSite(gomock.Any(), gomock.Any()).
			Return(nil, site.ErrInvalidSlug)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/sites", req, setupKeyHeader())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, httperr.CodeValidationError)
		httptest.AssertFieldError(s.T(), w, "slug")
	})

	s.Run("slug重複は400のslug_exists", func() {
		req := builder.NewSiteBuilder().BuildCreateRequestDTO()

		s.mockCommands.EXPECT().CreateSite(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrSlugAlreadyExists)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/sites", req, setupKeyHeader())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, httperr.CodeSlugExists)
		httptest.AssertFieldError(s.T(), w, "slug")
	})

	s.Run("ストア未構成は500のconfiguration_error", func() {
		req := builder.NewSiteBuilder().BuildCreateRequestDTO()

		s.mockCommands.EXPECT().CreateSite(gomock.Any(), gomock.Any()).
			Return(nil, shared.ErrStoreNotConfigured)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/sites", req, setupKeyHeader())
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, httperr.CodeConfigurationError)
	})
}

func (s *SiteHandlerTestSuite) TestGetBySlug() {
	s.Run("成功: slugでサイトを返す", func() {
		view := builder.NewSiteBuilder().BuildView()

		s.mockQueries.EXPECT().GetBySlug(gomock.Any(), "my-salon").Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sites/my-salon", nil, nil)

		var resp resdto.SiteResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("my-salon", resp.Slug)
		s.Equal(view.Brand, resp.Brand)
	})

	s.Run("該当なしは404のnot_found", func() {
		s.mockQueries.EXPECT().GetBySlug(gomock.Any(), "unknown").
			Return(nil, queries.ErrSiteNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sites/unknown", nil, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, httperr.CodeNotFound)
	})

	s.Run("ストア障害は500のpersistence_error", func() {
		s.mockQueries.EXPECT().GetBySlug(gomock.Any(), "my-salon").
			Return(nil, shared.ErrStoreFailure)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sites/my-salon", nil, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, httperr.CodePersistenceError)
	})
}
