package pathfinding_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/hexpath/internal/engine"
	enginemock "github.com/KirkDiggler/hexpath/internal/engine/mock"
	"github.com/KirkDiggler/hexpath/internal/entities"
	"github.com/KirkDiggler/hexpath/internal/errors"
	"github.com/KirkDiggler/hexpath/internal/metrics"
	"github.com/KirkDiggler/hexpath/internal/orchestrators/pathfinding"
	"github.com/KirkDiggler/hexpath/internal/testutils"
	"github.com/KirkDiggler/hexpath/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite

	ctrl       *gomock.Controller
	mockEngine *enginemock.MockEngine
	metrics    *metrics.Metrics
	orch       pathfinding.Service
	ctx        context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.ctx = context.Background()

	orch, err := pathfinding.NewOrchestrator(&pathfinding.Config{
		Engine:  s.mockEngine,
		Metrics: s.metrics,
		Logger:  slog.New(slog.DiscardHandler),
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) openInput() *pathfinding.FindPathInput {
	return &pathfinding.FindPathInput{
		RequestType: pathfinding.RequestTypeDijkstra,
		Source:      entities.Offset{Row: 0, Col: 0},
		Target:      entities.Offset{Row: 2, Col: 2},
		Grid:        testutils.CellRows(testutils.OpenGrid3x3),
	}
}

func (s *OrchestratorTestSuite) requests(outcome pathfinding.Outcome) float64 {
	return testutil.ToFloat64(s.metrics.Requests.WithLabelValues(pathfinding.RequestTypeDijkstra, string(outcome)))
}

func (s *OrchestratorTestSuite) TestNewOrchestratorRequiresEngine() {
	orch, err := pathfinding.NewOrchestrator(&pathfinding.Config{})
	s.Require().Error(err)
	s.Assert().Nil(orch)
	s.Assert().Contains(err.Error(), "Engine")

	orch, err = pathfinding.NewOrchestrator(nil)
	s.Require().Error(err)
	s.Assert().Nil(orch)
}

func (s *OrchestratorTestSuite) TestNilInput() {
	out, err := s.orch.FindPath(s.ctx, nil)
	s.Require().Error(err)
	s.Assert().Nil(out)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRendersEnginePath() {
	input := s.openInput()

	s.mockEngine.EXPECT().
		FindPath(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.FindPathInput) (*engine.FindPathOutput, error) {
			s.Assert().Equal(9, in.Grid.Size())
			s.Assert().Equal(entities.NewHex(0, 0, 0, entities.KindStart), in.Source)
			s.Assert().Equal(entities.NewHex(1, 2, -3, entities.KindEnd), in.Target)
			return &engine.FindPathOutput{
				Path: []entities.Hex{
					entities.NewHex(1, 2, -3, entities.KindEnd),
					entities.NewHex(0, 0, 0, entities.KindStart),
				},
				Finalized: 9,
			}, nil
		})

	out, err := s.orch.FindPath(s.ctx, input)
	s.Require().NoError(err)
	s.Assert().Equal(pathfinding.OutcomePath, out.Outcome)
	s.Assert().Equal([]string{"Hex(1,2,-3)", "Hex(0,0,0)"}, out.Path)
	s.Assert().Equal(1.0, s.requests(pathfinding.OutcomePath))
}

func (s *OrchestratorTestSuite) TestNoPath() {
	mocks.ExpectNoPath(s.ctx, s.mockEngine)

	out, err := s.orch.FindPath(s.ctx, s.openInput())
	s.Require().NoError(err)
	s.Assert().Equal(pathfinding.OutcomeNoPath, out.Outcome)
	s.Assert().Equal([]string{pathfinding.MessageNoPath}, out.Path)
	s.Assert().Equal(1.0, s.requests(pathfinding.OutcomeNoPath))
}

func (s *OrchestratorTestSuite) TestEngineFailureIsReturned() {
	mocks.ExpectSearchFails(s.ctx, s.mockEngine, fmt.Errorf("boom"))

	out, err := s.orch.FindPath(s.ctx, s.openInput())
	s.Require().Error(err)
	s.Assert().Nil(out)
	s.Assert().True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestInvalidCharacterSkipsEngine() {
	input := s.openInput()
	input.Grid = testutils.CellRows([]string{"sbb", "bib", "bbe"})

	out, err := s.orch.FindPath(s.ctx, input)
	s.Require().NoError(err)
	s.Assert().Equal(pathfinding.OutcomeInvalidGrid, out.Outcome)
	s.Assert().Equal([]string{"Invalid character in graph"}, out.Path)
	s.Assert().Equal(1.0, s.requests(pathfinding.OutcomeInvalidGrid))
}

func (s *OrchestratorTestSuite) TestInvalidRequestTypeSkipsEngine() {
	input := s.openInput()
	input.RequestType = "astar"

	out, err := s.orch.FindPath(s.ctx, input)
	s.Require().NoError(err)
	s.Assert().Equal(pathfinding.OutcomeInvalidRequestType, out.Outcome)
	s.Assert().Equal([]string{"Invalid request type"}, out.Path)
	s.Assert().Equal(1.0, testutil.ToFloat64(
		s.metrics.Requests.WithLabelValues(metrics.OtherRequestType, string(pathfinding.OutcomeInvalidRequestType))))
}

func (s *OrchestratorTestSuite) TestUnsupportedRequestTypesShareOneSeries() {
	for i := 0; i < 100; i++ {
		input := s.openInput()
		input.RequestType = fmt.Sprintf("junk%d", i)

		out, err := s.orch.FindPath(s.ctx, input)
		s.Require().NoError(err)
		s.Require().Equal(pathfinding.OutcomeInvalidRequestType, out.Outcome)
	}

	s.Assert().Equal(1, testutil.CollectAndCount(s.metrics.Requests))
	s.Assert().Equal(100.0, testutil.ToFloat64(
		s.metrics.Requests.WithLabelValues(metrics.OtherRequestType, string(pathfinding.OutcomeInvalidRequestType))))
}

func (s *OrchestratorTestSuite) TestInvalidUTF8RequestType() {
	input := s.openInput()
	input.RequestType = "\xff"

	var out *pathfinding.FindPathOutput
	s.Require().NotPanics(func() {
		var err error
		out, err = s.orch.FindPath(s.ctx, input)
		s.Require().NoError(err)
	})
	s.Assert().Equal([]string{"Invalid request type"}, out.Path)
}

func (s *OrchestratorTestSuite) TestRequestTypeIsCaseSensitive() {
	input := s.openInput()
	input.RequestType = "Dijkstra"

	out, err := s.orch.FindPath(s.ctx, input)
	s.Require().NoError(err)
	s.Assert().Equal(pathfinding.OutcomeInvalidRequestType, out.Outcome)
}

func (s *OrchestratorTestSuite) TestBadGridReportedBeforeBadRequestType() {
	input := s.openInput()
	input.RequestType = "bfs"
	input.Grid = [][]string{{"x"}}

	out, err := s.orch.FindPath(s.ctx, input)
	s.Require().NoError(err)
	s.Assert().Equal([]string{pathfinding.MessageInvalidCharacter}, out.Path)
}

// End to end through the real engine.
type FindPathIntegrationTestSuite struct {
	suite.Suite

	orch pathfinding.Service
	ctx  context.Context
}

func TestFindPathIntegrationSuite(t *testing.T) {
	suite.Run(t, new(FindPathIntegrationTestSuite))
}

func (s *FindPathIntegrationTestSuite) SetupTest() {
	eng, err := engine.New(&engine.Config{Logger: slog.New(slog.DiscardHandler)})
	s.Require().NoError(err)

	orch, err := pathfinding.NewOrchestrator(&pathfinding.Config{
		Engine: eng,
		Logger: slog.New(slog.DiscardHandler),
	})
	s.Require().NoError(err)
	s.orch = orch
	s.ctx = context.Background()
}

func (s *FindPathIntegrationTestSuite) find(requestType string, rows []string, target entities.Offset) *pathfinding.FindPathOutput {
	out, err := s.orch.FindPath(s.ctx, &pathfinding.FindPathInput{
		RequestType: requestType,
		Source:      entities.Offset{Row: 0, Col: 0},
		Target:      target,
		Grid:        testutils.CellRows(rows),
	})
	s.Require().NoError(err)
	return out
}

func (s *FindPathIntegrationTestSuite) TestOpenGrid() {
	out := s.find(pathfinding.RequestTypeDijkstra, testutils.OpenGrid3x3, entities.Offset{Row: 2, Col: 2})
	s.Assert().Equal(testutils.OpenGrid3x3Path, out.Path)
	s.Assert().Equal(pathfinding.OutcomePath, out.Outcome)
}

func (s *FindPathIntegrationTestSuite) TestIdempotent() {
	first := s.find(pathfinding.RequestTypeDijkstra, testutils.DetourGrid5x5, entities.Offset{Row: 4, Col: 4})
	second := s.find(pathfinding.RequestTypeDijkstra, testutils.DetourGrid5x5, entities.Offset{Row: 4, Col: 4})
	s.Assert().Equal(first, second)
	s.Assert().Equal(pathfinding.OutcomePath, first.Outcome)
	s.Assert().Equal("Hex(2,4,-6)", first.Path[0])
	s.Assert().Equal("Hex(0,0,0)", first.Path[len(first.Path)-1])
}

func (s *FindPathIntegrationTestSuite) TestWalledGrid() {
	out := s.find(pathfinding.RequestTypeDijkstra, testutils.WalledGrid3x3, entities.Offset{Row: 2, Col: 2})
	s.Assert().Equal([]string{"No path found"}, out.Path)
}

func (s *FindPathIntegrationTestSuite) TestTargetOutsideGrid() {
	out := s.find(pathfinding.RequestTypeDijkstra, testutils.OpenGrid3x3, entities.Offset{Row: 10, Col: 10})
	s.Assert().Equal([]string{"No path found"}, out.Path)
}

func (s *FindPathIntegrationTestSuite) TestInvalidCharacter() {
	out := s.find(pathfinding.RequestTypeDijkstra, []string{"sbi", "bbb", "bbe"}, entities.Offset{Row: 2, Col: 2})
	s.Assert().Equal([]string{"Invalid character in graph"}, out.Path)
}

func (s *FindPathIntegrationTestSuite) TestInvalidRequestType() {
	out := s.find("bfs", testutils.OpenGrid3x3, entities.Offset{Row: 2, Col: 2})
	s.Assert().Equal([]string{"Invalid request type"}, out.Path)
}
