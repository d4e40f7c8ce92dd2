package tooling

import (
	"context"
	"errors"
	"fmt"

	"python-docs-copilot/internal/sandbox"
	"python-docs-copilot/pkg/log"
)

// DefaultMaxCodeLength caps snippet size in bytes.
const DefaultMaxCodeLength = 1000

// CodeExecutor runs user-supplied snippets through the sandbox.
type CodeExecutor struct {
	runner        *sandbox.Runner
	maxCodeLength int
	logger        log.Logger
}

// NewCodeExecutor creates a CodeExecutor over the given sandbox runner.
func NewCodeExecutor(runner *sandbox.Runner, maxCodeLength int, logger log.Logger) *CodeExecutor {
	if maxCodeLength <= 0 {
		maxCodeLength = DefaultMaxCodeLength
	}
	return &CodeExecutor{
		runner:        runner,
		maxCodeLength: maxCodeLength,
		logger:        logger,
	}
}

// Execute runs the snippet and returns its captured output.
// Oversized snippets are rejected before reaching the interpreter.
func (e *CodeExecutor) Execute(ctx context.Context, code string) ExecutionResult {
	if code == "" {
		return ExecutionResult{Success: false, Error: "no code provided"}
	}
	if len(code) > e.maxCodeLength {
		return ExecutionResult{
			Success: false,
			Error:   fmt.Sprintf("code exceeds maximum length of %d characters", e.maxCodeLength),
		}
	}

	e.logger.Debugf(ctx, "executing code snippet (%d bytes)", len(code))

	output, err := e.runner.Run(ctx, code)
	if err != nil {
		if errors.Is(err, sandbox.ErrTimeout) {
			e.logger.Warn(ctx, "code execution timed out")
		} else {
			e.logger.Warnf(ctx, "code execution failed: %v", err)
		}
		return ExecutionResult{Success: false, Output: output, Error: err.Error()}
	}

	if output == "" {
		output = "Code executed successfully (no output)"
	}
	return ExecutionResult{Success: true, Output: output}
}
