// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
)

// calculateEnv contains the functions and constants an expression may
// reference. abs, round, min, max, ceil and floor are expr builtins.
var calculateEnv = map[string]interface{}{
	"sqrt":  math.Sqrt,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"log":   math.Log,
	"log10": math.Log10,
	"exp":   math.Exp,
	"pow":   math.Pow,
	"pi":    math.Pi,
	"e":     math.E,
}

func NewCalculateTool() server.ServerTool {

	type CalculateArgs struct {
		Expression string `json:"expression"`
	}

	tool := mcp.NewTool("calculate",
		mcp.WithDescription("Perform mathematical calculations and evaluate expressions"),
		mcp.WithString("expression",
			mcp.Required(),
			mcp.Description("Mathematical expression to evaluate (e.g. '2+2', 'sqrt(16)', 'sin(pi/2)')"),
		),
	)
	handler := mcp.NewTypedToolHandler(func(
		ctx context.Context,
		request mcp.CallToolRequest,
		args CalculateArgs,
	) (*mcp.CallToolResult, error) {
		expression := strings.TrimSpace(args.Expression)
		if expression == "" {
			return mcp.NewToolResultError("expression is required"), nil
		}

		program, err := expr.Compile(expression, expr.Env(calculateEnv))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid expression: %v", err)), nil
		}

		output, err := expr.Run(program, calculateEnv)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
		}

		result, err := formatCalculateResult(output)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("%s = %s", expression, result)), nil
	})
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}

// formatCalculateResult renders integral floats without a fractional part
// and everything else with at most ten significant digits.
func formatCalculateResult(value interface{}) (string, error) {
	switch v := value.(type) {
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return "", errors.New("result is not a finite number")
		}
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10), nil
		}
		return fmt.Sprintf("%.10g", v), nil
	case int:
		return strconv.Itoa(v), nil
	default:
		return fmt.Sprintf("%v", value), nil
	}
}
