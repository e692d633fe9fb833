package frienddelivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-split/internal/domain"
	"github.com/go-petr/pet-split/pkg/errorspkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestList(t *testing.T) {
	friends := []domain.FriendBalance{
		{Name: "Bob Young", ID: 2, Balance: "250.5"},
		{Name: "Carol", ID: 3, Balance: "0"},
	}

	testCases := []struct {
		name           string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(t *testing.T, body []byte)
	}{
		{
			name: "OK",
			buildStubs: func(service *MockService) {
				service.EXPECT().List(gomock.Any()).Times(1).Return(friends, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(t *testing.T, body []byte) {
				var got struct {
					Data struct {
						Friends []domain.FriendBalance `json:"friends"`
					} `json:"data"`
				}

				require.NoError(t, json.Unmarshal(body, &got))

				if diff := cmp.Diff(friends, got.Data.Friends); diff != "" {
					t.Errorf("friends mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "Remote validation error",
			buildStubs: func(service *MockService) {
				service.EXPECT().List(gomock.Any()).
					Times(1).
					Return(nil, domain.NewValidationError("invalid api request"))
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "invalid api request",
		},
		{
			name: "Transport error",
			buildStubs: func(service *MockService) {
				service.EXPECT().List(gomock.Any()).
					Times(1).
					Return(nil, domain.NewTransportError("unexpected error: connection refused"))
			},
			wantStatusCode: http.StatusBadGateway,
			wantError:      "unexpected error: connection refused",
		},
		{
			name: "Unconfigured credentials",
			buildStubs: func(service *MockService) {
				service.EXPECT().List(gomock.Any()).Times(1).Return(nil, errorspkg.ErrUnconfigured)
			},
			wantStatusCode: http.StatusServiceUnavailable,
			wantError:      errorspkg.ErrUnconfigured.Error(),
		},
		{
			name: "Unknown error",
			buildStubs: func(service *MockService) {
				service.EXPECT().List(gomock.Any()).Times(1).Return(nil, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			handler := NewHandler(service)

			server := gin.New()
			server.GET("/friends", handler.List)

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/friends", nil)

			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantError != "" {
				var got struct {
					Error string `json:"error"`
				}

				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, tc.wantError, got.Error)
			}

			if tc.checkData != nil {
				tc.checkData(t, recorder.Body.Bytes())
			}
		})
	}
}
