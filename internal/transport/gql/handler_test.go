package gql

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AbdelazizSaid250/membership-service/internal/domain/entity"
	"github.com/AbdelazizSaid250/membership-service/internal/repository/mocks"
	"github.com/AbdelazizSaid250/membership-service/internal/transport/http/middleware"
	"github.com/AbdelazizSaid250/membership-service/internal/usecase"
)

const handlerSecret = "gql-secret"

func TestHandler_DeleteAllMembersAdminToken(t *testing.T) {
	members := &mocks.MemberRepository{}
	members.On("DeleteAll", mock.Anything).Return([]*entity.Member{{}, {}, {}}, nil).Once()

	log := zap.NewNop()
	tx := &mocks.TxManager{}
	locker := &mocks.Locker{}
	h := NewHandler(HandlerConfig{
		Resolver: NewResolver(
			usecase.NewAuthUserUseCase(&mocks.AuthUserRepository{}, members, tx, locker, log),
			usecase.NewMemberUseCase(members, &mocks.TeamRepository{}, tx, locker, log),
		),
		AdminSecret: handlerSecret,
		JSONLimit:   4096,
		Logger:      log,
	})

	adminToken, err := middleware.IssueAdminToken(handlerSecret, time.Minute)
	require.NoError(t, err)
	foreignToken, err := middleware.IssueAdminToken("other-secret", time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    string
		wantData string
		wantType string
	}{
		{name: "no token", wantType: typeUnauthorized},
		{name: "foreign token", token: foreignToken, wantType: typeUnauthorized},
		{name: "admin token", token: adminToken, wantData: `{"deleteAllMembers":3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/graphql",
				strings.NewReader(`{"query":"mutation { deleteAllMembers }"}`))
			req.Header.Set("Content-Type", "application/json")
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var resp struct {
				Data   json.RawMessage `json:"data"`
				Errors []struct {
					Message    string         `json:"message"`
					Extensions map[string]any `json:"extensions"`
				} `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			if tt.wantType != "" {
				require.Len(t, resp.Errors, 1)
				assert.Equal(t, tt.wantType, resp.Errors[0].Extensions[extensionKeyType])
				return
			}
			require.Empty(t, resp.Errors)
			assert.JSONEq(t, tt.wantData, string(resp.Data))
		})
	}

	members.AssertNumberOfCalls(t, "DeleteAll", 1)
}

func TestHandler_OnlyPost(t *testing.T) {
	log := zap.NewNop()
	h := NewHandler(HandlerConfig{
		Resolver: NewResolver(
			usecase.NewAuthUserUseCase(&mocks.AuthUserRepository{}, &mocks.MemberRepository{}, &mocks.TxManager{}, &mocks.Locker{}, log),
			usecase.NewMemberUseCase(&mocks.MemberRepository{}, &mocks.TeamRepository{}, &mocks.TxManager{}, &mocks.Locker{}, log),
		),
		AdminSecret: handlerSecret,
		JSONLimit:   4096,
		Logger:      log,
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graphql", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
