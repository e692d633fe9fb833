package groupdelivery

import (
	"bytes"
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
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestCreate(t *testing.T) {
	requestBody := gin.H{
		"group_name":  "Trip",
		"first_names": []string{"A", "B"},
		"last_names":  []string{"X", "Y"},
		"emails":      []string{"a@x.com", "b@y.com"},
	}

	fullResult := domain.CreateGroupResult{
		Message:   "Group created successfully",
		GroupID:   42,
		GroupName: "Trip",
		MembersAdded: []domain.Member{
			{ID: 11, Name: "A X", Email: "a@x.com"},
			{ID: 12, Name: "B Y", Email: "b@y.com"},
		},
	}

	testCases := []struct {
		name           string
		requestBody    gin.H
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
		checkResponse  func(t *testing.T, body []byte)
	}{
		{
			name:        "OK",
			requestBody: requestBody,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Provision(gomock.Any(),
						gomock.Eq("Trip"),
						gomock.Eq([]string{"A", "B"}),
						gomock.Eq([]string{"X", "Y"}),
						gomock.Eq([]string{"a@x.com", "b@y.com"})).
					Times(1).
					Return(fullResult, nil)
			},
			wantStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, body []byte) {
				var got struct {
					Data domain.CreateGroupResult `json:"data"`
				}

				require.NoError(t, json.Unmarshal(body, &got))

				if diff := cmp.Diff(fullResult, got.Data); diff != "" {
					t.Errorf("result mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:        "Enrollment failure returns partial progress",
			requestBody: requestBody,
			buildStubs: func(service *MockService) {
				partial := domain.CreateGroupResult{
					GroupID:   42,
					GroupName: "Trip",
					MembersAdded: []domain.Member{
						{ID: 11, Name: "A X", Email: "a@x.com"},
					},
				}

				service.EXPECT().
					Provision(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(partial, domain.NewValidationError("failed to add user B Y: user: cannot be invited"))
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "failed to add user B Y: user: cannot be invited",
			checkResponse: func(t *testing.T, body []byte) {
				var got struct {
					Data struct {
						GroupID      int64           `json:"group_id"`
						MembersAdded []domain.Member `json:"members_added"`
					} `json:"data"`
				}

				require.NoError(t, json.Unmarshal(body, &got))
				require.Equal(t, int64(42), got.Data.GroupID)
				require.Len(t, got.Data.MembersAdded, 1)
				require.Equal(t, "A X", got.Data.MembersAdded[0].Name)
			},
		},
		{
			name:        "Group creation failure carries no partial data",
			requestBody: requestBody,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Provision(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.CreateGroupResult{}, domain.NewValidationError("failed to create group: name: can't be blank"))
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "failed to create group: name: can't be blank",
			checkResponse: func(t *testing.T, body []byte) {
				var got map[string]json.RawMessage

				require.NoError(t, json.Unmarshal(body, &got))
				require.NotContains(t, got, "data")
			},
		},
		{
			name: "Missing group name",
			requestBody: gin.H{
				"first_names": []string{"A"},
				"last_names":  []string{"X"},
				"emails":      []string{"a@x.com"},
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Provision(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "GroupName field is required",
		},
		{
			name: "Invalid email",
			requestBody: gin.H{
				"group_name":  "Trip",
				"first_names": []string{"A"},
				"last_names":  []string{"X"},
				"emails":      []string{"not-an-email"},
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Provision(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Emails[0] field must be a valid email address",
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
			server.POST("/groups", handler.Create)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, "/groups", bytes.NewReader(body))

			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantError != "" {
				var got struct {
					Error string `json:"error"`
				}

				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, tc.wantError, got.Error)
			}

			if tc.checkResponse != nil {
				tc.checkResponse(t, recorder.Body.Bytes())
			}
		})
	}
}
