package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/telemetry"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.trai.ch/forge/internal/engine/phase"
	"go.trai.ch/forge/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const buildDir = "/src/project/build"

type fixture struct {
	executor  *mocks.MockExecutor
	workspace *mocks.MockWorkspace
	out       *bytes.Buffer
	pipeline  *pipeline.Pipeline
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		executor:  mocks.NewMockExecutor(ctrl),
		workspace: mocks.NewMockWorkspace(ctrl),
		out:       &bytes.Buffer{},
	}
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	phases := phase.NewDefaultSet(f.executor, f.workspace, f.out)
	f.pipeline = pipeline.New(phases, telemetry.NewNoOp(), mockLogger)
	return f
}

func config(clean, test, examples bool) domain.BuildConfig {
	return domain.BuildConfig{
		Clean:          clean,
		Test:           test,
		Examples:       examples,
		SourceDir:      "/src/project",
		BuildDir:       buildDir,
		Parallelism:    4,
		ExamplesOption: domain.DefaultExamplesOption,
		Toolchain:      domain.DefaultToolchain(),
	}
}

func runs(command string) gomock.Matcher {
	return gomock.Cond(func(inv domain.Invocation) bool {
		return inv.Command == command
	})
}

func TestRun_DefaultConfigureAndBuild(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.workspace.EXPECT().EnsureDir(buildDir).Return(nil),
		f.executor.EXPECT().Run(gomock.Any(), phase.ConfigureInvocation(config(false, false, false))).Return(nil),
		f.executor.EXPECT().Run(gomock.Any(), phase.BuildInvocation(config(false, false, false))).Return(nil),
	)
	f.workspace.EXPECT().Exists(gomock.Any()).Times(0)
	f.workspace.EXPECT().RemoveAll(gomock.Any()).Times(0)

	require.NoError(t, f.pipeline.Run(context.Background(), config(false, false, false)))
	assert.Empty(t, f.out.String())
}

func TestRun_TestAfterBuild(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.workspace.EXPECT().EnsureDir(buildDir).Return(nil),
		f.executor.EXPECT().Run(gomock.Any(), runs("cmake")).Return(nil).Times(2),
		f.executor.EXPECT().Run(gomock.Any(), runs("ctest")).Return(nil),
	)

	require.NoError(t, f.pipeline.Run(context.Background(), config(false, true, false)))
}

func TestRun_CleanOnly(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.workspace.EXPECT().Exists(buildDir).Return(true, nil),
		f.workspace.EXPECT().RemoveAll(buildDir).Return(nil),
	)
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, f.pipeline.Run(context.Background(), config(true, false, false)))
	assert.Equal(t, ">>> Removed "+buildDir+"\n", f.out.String())
}

func TestRun_CleanThenFullRun(t *testing.T) {
	tests := []struct {
		name     string
		test     bool
		examples bool
		commands []string
	}{
		{name: "clean and test", test: true, commands: []string{"cmake", "cmake", "ctest"}},
		{name: "clean and examples", examples: true, commands: []string{"cmake", "cmake"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			var ran []string
			record := func(_ context.Context, inv domain.Invocation) error {
				ran = append(ran, inv.Command)
				return nil
			}

			gomock.InOrder(
				f.workspace.EXPECT().Exists(buildDir).Return(false, nil),
				f.workspace.EXPECT().EnsureDir(buildDir).Return(nil),
				f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(record).Times(len(tt.commands)),
			)

			require.NoError(t, f.pipeline.Run(context.Background(), config(true, tt.test, tt.examples)))
			assert.Equal(t, tt.commands, ran)
			assert.Equal(t, ">>> Nothing to clean\n", f.out.String())
		})
	}
}

func TestRun_ConfigureFailureStopsPipeline(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.workspace.EXPECT().EnsureDir(buildDir).Return(nil),
		f.executor.EXPECT().Run(gomock.Any(), runs("cmake")).Return(&domain.ProcessError{Command: "cmake", Code: 2}),
	)

	err := f.pipeline.Run(context.Background(), config(false, true, false))
	require.ErrorIs(t, err, domain.ErrProcessFailed)
	assert.Equal(t, 2, domain.OutcomeOf(err).Code)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "configure", zErr.Metadata()["phase"])
}

func TestRun_BuildFailureSkipsTest(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.workspace.EXPECT().EnsureDir(buildDir).Return(nil),
		f.executor.EXPECT().Run(gomock.Any(), phase.ConfigureInvocation(config(false, true, false))).Return(nil),
		f.executor.EXPECT().Run(gomock.Any(), phase.BuildInvocation(config(false, true, false))).
			Return(&domain.LaunchError{Command: "cmake", Err: errors.New("not found")}),
	)

	err := f.pipeline.Run(context.Background(), config(false, true, false))
	require.ErrorIs(t, err, domain.ErrLaunchFailed)
	assert.Equal(t, domain.ExitLaunchFailed, domain.OutcomeOf(err).Code)
}

func TestRun_CleanFailureStopsPipeline(t *testing.T) {
	f := newFixture(t)

	f.workspace.EXPECT().Exists(buildDir).Return(true, nil)
	f.workspace.EXPECT().RemoveAll(buildDir).Return(errors.New("device busy"))

	err := f.pipeline.Run(context.Background(), config(true, true, false))
	require.ErrorIs(t, err, domain.ErrIO)
	assert.Equal(t, domain.ExitFailure, domain.OutcomeOf(err).Code)
}

func TestRun_CanceledContextStartsNothing(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.pipeline.Run(ctx, config(true, true, true))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_RecordsPhaseVertices(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockWorkspace := mocks.NewMockWorkspace(ctrl)
	mockTelemetry := mocks.NewMockTelemetry(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	configureVertex := mocks.NewMockVertex(ctrl)
	buildVertex := mocks.NewMockVertex(ctrl)
	procErr := &domain.ProcessError{Command: "cmake", Code: 1}

	mockWorkspace.EXPECT().EnsureDir(buildDir).Return(nil)
	gomock.InOrder(
		mockTelemetry.EXPECT().Record(gomock.Any(), "configure").DoAndReturn(
			func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
				return ctx, configureVertex
			}),
		configureVertex.EXPECT().Log(gomock.Any()),
		mockExecutor.EXPECT().Run(gomock.Any(), runs("cmake")).Return(nil),
		configureVertex.EXPECT().Complete(nil),
		mockTelemetry.EXPECT().Record(gomock.Any(), "build").DoAndReturn(
			func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
				return ctx, buildVertex
			}),
		buildVertex.EXPECT().Log(gomock.Any()),
		mockExecutor.EXPECT().Run(gomock.Any(), runs("cmake")).Return(procErr),
		buildVertex.EXPECT().Complete(procErr),
	)

	p := pipeline.New(phase.NewDefaultSet(mockExecutor, mockWorkspace, &bytes.Buffer{}), mockTelemetry, mockLogger)
	err := p.Run(context.Background(), config(false, true, false))
	require.ErrorIs(t, err, domain.ErrProcessFailed)
}
