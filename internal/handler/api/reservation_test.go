//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"salon-site/internal/domain/reservation"
	"salon-site/internal/handler/api"
	resdto "salon-site/internal/handler/dto/response"
	"salon-site/internal/handler/httperr"
	"salon-site/internal/handler/middleware"
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

type ReservationHandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	router       *gin.Engine
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)

	handler := api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())
	s.router.POST("/api/reservations", handler.Create)
	s.router.GET("/api/reservations", handler.ListByLineUser)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	s.Run("成功: 201とLocationヘッダを返す", func() {
		req := builder.NewReservationBuilder().BuildCreateRequestDTO()
		newID := uuid.New()

		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(&commands.CreateReservationResult{ID: newID}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations", req, nil)

		var created resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.Equal(newID, created.ID)
		httptest.AssertHeaders(s.T(), w, map[string]string{
			"Location": "/api/reservations/" + newID.String(),
		})
	})

	s.Run("必須項目欠落はバインドで400になる", func() {
		cases := []struct {
			name  string
			mut   func(map[string]any)
			field string
		}{
			{name: "lineUserId欠落", mut: testutil.Field("lineUserId", nil), field: "lineUserId"},
			{name: "menu欠落", mut: testutil.Field("menu", nil), field: "menu"},
			{name: "reservedAt欠落", mut: testutil.Field("reservedAt", nil), field: "reservedAt"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), builder.NewReservationBuilder().BuildCreateRequestDTO(), tc.mut)

				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Times(0)

				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations", body, nil)
				httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, httperr.CodeValidationError)
				httptest.AssertFieldError(s.T(), w, tc.field)
			})
		}
	})

	s.Run("ドメイン検証エラーは400とフィールド詳細になる", func() {
		cases := []struct {
			name   string
			cmdErr error
			field  string
		}{
			{name: "電話番号の形式不正", cmdErr: reservation.ErrInvalidPhone, field: "phone"},
			{name: "reservedAt解析不能", cmdErr: reservation.ErrInvalidReservedAt, field: "reservedAt"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				req := builder.NewReservationBuilder().BuildCreateRequestDTO()

				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(nil, tc.cmdErr)

				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations", req, nil)
				httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, httperr.CodeValidationError)
				httptest.AssertFieldError(s.T(), w, tc.field)
			})
		}
	})

	s.Run("ストア未構成は500のconfiguration_error", func() {
		req := builder.NewReservationBuilder().BuildCreateRequestDTO()

		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(nil, shared.ErrStoreNotConfigured)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations", req, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, httperr.CodeConfigurationError)
	})

	s.Run("スキーマ未適用は500のconfiguration_error", func() {
		req := builder.NewReservationBuilder().BuildCreateRequestDTO()

		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(nil, shared.ErrSchemaNotApplied)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations", req, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, httperr.CodeConfigurationError)
	})

	s.Run("その他のストア障害は500のpersistence_error", func() {
		req := builder.NewReservationBuilder().BuildCreateRequestDTO()

		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(nil, shared.ErrStoreFailure)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations", req, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, httperr.CodePersistenceError)
	})
}

func (s *ReservationHandlerTestSuite) TestListByLineUser() {
	s.Run("成功: ユーザーの予約一覧を返す", func() {
		views := []*queries.ReservationView{
			builder.NewReservationBuilder().WithMenu("カラー").BuildView(),
			builder.NewReservationBuilder().WithMenu("カット").BuildView(),
		}
		s.mockQueries.EXPECT().ListByLineUser(gomock.Any(), "U1234567890abcdef").
			Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?lineUserId=U1234567890abcdef", nil, nil)

		var list []*resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		s.Len(list, 2)
		s.Equal("カラー", list[0].Menu)
		s.Equal("カット", list[1].Menu)
	})

	s.Run("成功: 該当なしは空配列", func() {
		s.mockQueries.EXPECT().ListByLineUser(gomock.Any(), "Unobody").Return(nil, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?lineUserId=Unobody", nil, nil)

		var list []*resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		s.Empty(list)
	})

	s.Run("lineUserIdクエリ欠落は400", func() {
		s.mockQueries.EXPECT().ListByLineUser(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations", nil, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, httperr.CodeValidationError)
		httptest.AssertFieldError(s.T(), w, "lineUserId")
	})
}
