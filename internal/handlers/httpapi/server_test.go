package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/thirstylabs/chugline/internal/common/clock"
	"github.com/thirstylabs/chugline/internal/common/uuid"
	"github.com/thirstylabs/chugline/internal/identity"
	"github.com/thirstylabs/chugline/internal/penalty"
	userRepo "github.com/thirstylabs/chugline/internal/repositories/user"
	"github.com/thirstylabs/chugline/internal/services/game"
	"github.com/thirstylabs/chugline/internal/services/leaderboard"
	"github.com/thirstylabs/chugline/internal/services/oracle"
	oracleMocks "github.com/thirstylabs/chugline/internal/services/oracle/mocks"
	"github.com/thirstylabs/chugline/internal/services/profile"
	"github.com/thirstylabs/chugline/internal/services/quest"
	"github.com/thirstylabs/chugline/internal/services/score"
)

type ServerTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockOracle *oracleMocks.MockService
	mr         *miniredis.Miniredis
	client     *redis.Client
	registry   *penalty.Registry
	testServer *httptest.Server
	httpClient *http.Client
}

func (s *ServerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockOracle = oracleMocks.NewMockService(s.mockCtrl)

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := userRepo.NewRedis(&userRepo.Config{
		RedisClient: s.client,
		AppID:       "test-app",
	})
	s.Require().NoError(err)

	systemClock := &clock.DefaultClock{}

	scoreLedger, err := score.New(&score.Config{Clock: systemClock})
	s.Require().NoError(err)

	s.registry, err = penalty.NewRegistry(&penalty.Config{Clock: systemClock})
	s.Require().NoError(err)

	gameService, err := game.New(&game.Config{
		UserRepo:      repo,
		QuestEngine:   quest.New(nil),
		ScoreLedger:   scoreLedger,
		Projector:     leaderboard.New(),
		Profiles:      profile.New(),
		Oracle:        s.mockOracle,
		PenaltySignal: s.registry,
		Clock:         systemClock,
	})
	s.Require().NoError(err)

	provider, err := identity.NewAnonymous(&identity.Config{
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)

	server, err := New(&Config{
		Addr:             ":0",
		GameService:      gameService,
		IdentityProvider: provider,
		PenaltyRegistry:  s.registry,
	})
	s.Require().NoError(err)

	s.testServer = httptest.NewServer(server.Handler())

	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)
	s.httpClient = &http.Client{Jar: jar}
}

func (s *ServerTestSuite) TearDownTest() {
	s.testServer.Close()
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) postJSON(path string, payload any) *http.Response {
	body, err := json.Marshal(payload)
	s.Require().NoError(err)

	resp, err := s.httpClient.Post(s.testServer.URL+path, "application/json", bytes.NewReader(body))
	s.Require().NoError(err)
	return resp
}

func (s *ServerTestSuite) decode(resp *http.Response, target any) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(target))
}

func (s *ServerTestSuite) startSession() *userResponse {
	resp := s.postJSON("/api/session", map[string]string{})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var user userResponse
	s.decode(resp, &user)
	return &user
}

func (s *ServerTestSuite) TestSessionCreatesUserAndSetsCookie() {
	user := s.startSession()

	s.NotEmpty(user.UserID)
	s.True(strings.HasPrefix(user.DisplayName, "Anonymous User "))
	s.Equal(0, user.Drinks)
	s.Len(user.DailyQuests, 3)

	// The cookie pins the identity: /api/me returns the same user
	resp, err := s.httpClient.Get(s.testServer.URL + "/api/me")
	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var me userResponse
	s.decode(resp, &me)
	s.Equal(user.UserID, me.UserID)
}

func (s *ServerTestSuite) TestSecondSessionIsNotCreated() {
	s.startSession()

	resp := s.postJSON("/api/session", map[string]string{})
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func (s *ServerTestSuite) TestAddDrink() {
	s.startSession()

	resp := s.postJSON("/api/drinks", &addDrinkRequest{ProofMessage: "  pic  "})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var output addDrinkResponse
	s.decode(resp, &output)

	s.Equal(1, output.AmountAdded)
	s.False(output.PenaltyApplied)
	s.Equal(1, output.Record.Drinks)
	s.Equal("pic", output.Record.LastProofMessage)
}

func (s *ServerTestSuite) TestAddDrinkWithReportedPenalty() {
	s.startSession()

	resp := s.postJSON("/api/penalty", &penaltyReportRequest{Active: true})
	s.Require().Equal(http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = s.postJSON("/api/drinks", &addDrinkRequest{})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var output addDrinkResponse
	s.decode(resp, &output)

	s.Equal(2, output.AmountAdded)
	s.True(output.PenaltyApplied)
}

func (s *ServerTestSuite) TestRenameRejectsWhitespace() {
	s.startSession()

	resp := s.postJSON("/api/name", &renameRequest{DisplayName: "   "})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (s *ServerTestSuite) TestRenameCompletesQuest() {
	s.startSession()

	resp := s.postJSON("/api/name", &renameRequest{DisplayName: "Quest Goblin"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var output renameResponse
	s.decode(resp, &output)

	s.Equal("Quest Goblin", output.Record.DisplayName)
	s.Require().NotNil(output.QuestCompleted)
	s.Equal(5, output.QuestCompleted.RewardPoints)
	s.Equal(5, output.Record.Drinks)
}

func (s *ServerTestSuite) TestTruthOrDare() {
	s.startSession()

	s.mockOracle.EXPECT().
		GenerateTruthOrDare(gomock.Any(), gomock.Any()).
		Return(&oracle.GenerateTruthOrDareOutput{Text: "Truth: last one standing?"}, nil)

	resp := s.postJSON("/api/truth-or-dare", map[string]string{})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var output generatedTextResponse
	s.decode(resp, &output)

	s.Equal("Truth: last one standing?", output.Text)
	s.False(output.Fallback)
	s.Require().NotNil(output.QuestCompleted)
	s.Equal(5, output.QuestCompleted.RewardPoints)
}

func (s *ServerTestSuite) TestLeaderboard() {
	s.startSession()

	resp := s.postJSON("/api/drinks", &addDrinkRequest{})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err := s.httpClient.Get(s.testServer.URL + "/api/leaderboard")
	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var output leaderboardResponse
	s.decode(resp, &output)

	s.Require().Len(output.Entries, 1)
	s.Equal(1, output.Entries[0].Drinks)
	s.Equal(1, output.Entries[0].Rank)
}

func (s *ServerTestSuite) TestWatchLeaderboardStreamsSnapshot() {
	user := s.startSession()

	wsURL := "ws" + strings.TrimPrefix(s.testServer.URL, "http") + "/ws/leaderboard"

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	s.Require().NoError(err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var msg struct {
		Entries []struct {
			UserID string `json:"userId"`
			Drinks int    `json:"drinks"`
		} `json:"entries"`
	}
	s.Require().NoError(conn.ReadJSON(&msg))

	s.Require().Len(msg.Entries, 1)
	s.Equal(user.UserID, msg.Entries[0].UserID)
}
