package main

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/Halukc1974/erp-sub000/contracts"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type FormulaEvaluator struct {
	compilerOptions []expr.Option
	vmPool          sync.Pool
}

const FormulaPrefix = "="

var arithmeticLiteralRegex = regexp.MustCompile(`^[0-9+\-*/().\s]+$`)

var functionCallRegex = regexp.MustCompile(`(?is)^(SUM|AVG|AVERAGE|COUNT|MIN|MAX|IF)\s*\((.+)\)$`)

var numberLiteralRegex = regexp.MustCompile(`[0-9.]+`)

var cellReferenceRegex = regexp.MustCompile(`[A-Z]+[0-9]+`)

// comparisonOperators order matters: `>` must not match inside `>=`
var comparisonOperators = []string{">=", "<=", "!=", "=", ">", "<"}

func NewFormulaEvaluator() *FormulaEvaluator {
	return &FormulaEvaluator{
		compilerOptions: []expr.Option{
			expr.Env(map[string]any{}),
			expr.Optimize(false),
			expr.DisableAllBuiltins(),
		},

		vmPool: sync.Pool{
			New: func() any {
				return new(vm.VM)
			},
		},
	}
}

func (e *FormulaEvaluator) IsFormula(value string) bool {
	return strings.HasPrefix(value, FormulaPrefix)
}

// Evaluate
/**
 * Returns the display value of the formula. On failure the display value is ErrorDisplayValue
 * and err tells why; it never panics.
 * Supported forms, in priority order:
 *    - `=3*(4+1)`            arithmetic literal
 *    - `=SUM(A1:A10)`        SUM, AVG, AVERAGE, COUNT, MIN, MAX over a single row or column
 *    - `=IF(A1>5,"hi","lo")` one comparison, branches returned as is
 *    - `=A1*B2+3`            cell references substituted by their numeric values
 */
func (e *FormulaEvaluator) Evaluate(formula string, grid contracts.Matrix) (output string, err error) {
	// not formula
	if !e.IsFormula(formula) {
		return formula, nil
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			output = contracts.ErrorDisplayValue
			err = fmt.Errorf("%s: %w: %v", formula, contracts.InvalidExpressionError, recovered)
		}
	}()

	body := strings.TrimSpace(strings.TrimPrefix(formula, FormulaPrefix))
	if body == "" {
		return "", contracts.EmptyFormulaError
	}

	result, err := e.doEvaluate(body, grid)
	if err != nil {
		return contracts.ErrorDisplayValue, fmt.Errorf("%s: %w", formula, err)
	}

	return FormatResult(result), nil
}

func (e *FormulaEvaluator) doEvaluate(body string, grid contracts.Matrix) (any, error) {
	if arithmeticLiteralRegex.MatchString(body) {
		return e.evaluateArithmetic(body)
	}

	if matches := functionCallRegex.FindStringSubmatch(body); matches != nil {
		return e.evaluateFunction(strings.ToUpper(matches[1]), matches[2], grid)
	}

	return e.evaluateCellExpression(body, grid)
}

func (e *FormulaEvaluator) evaluateFunction(name string, arguments string, grid contracts.Matrix) (any, error) {
	if name == "IF" {
		return e.evaluateIf(arguments, grid)
	}

	values, err := rangeValues(arguments, grid)
	if err != nil {
		return nil, err
	}

	return rangeFunctions[name](values), nil
}

func (e *FormulaEvaluator) evaluateCellExpression(body string, grid contracts.Matrix) (any, error) {
	var referenceErr error

	substituted := cellReferenceRegex.ReplaceAllStringFunc(body, func(reference string) string {
		coordinate, err := CellRefToCoordinate(reference)
		if err != nil {
			if referenceErr == nil {
				referenceErr = err
			}
			return reference
		}

		return formatOperand(NumericGridValue(gridValueAt(grid, coordinate.RowNumber-1, coordinate.ColumnIndex)))
	})

	if referenceErr != nil {
		return nil, referenceErr
	}

	return e.evaluateArithmetic(substituted)
}

func (e *FormulaEvaluator) evaluateArithmetic(expression string) (any, error) {
	if !arithmeticLiteralRegex.MatchString(expression) {
		return nil, fmt.Errorf("`%s` contains disallowed characters: %w", expression, contracts.InvalidExpressionError)
	}

	expression = floatLiterals(expression)

	visitor := &ArithmeticOnlyVisitor{}
	options := make([]expr.Option, 0, len(e.compilerOptions)+1)
	options = append(options, e.compilerOptions...)
	options = append(options, expr.Patch(visitor))

	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", contracts.InvalidExpressionError, err.Error())
	}
	if visitor.err != nil {
		return nil, visitor.err
	}

	v := e.vmPool.Get().(*vm.VM)
	output, err := v.Run(program, nil)
	e.vmPool.Put(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", contracts.InvalidExpressionError, err.Error())
	}

	var number float64
	switch typed := output.(type) {
	case int:
		number = float64(typed)
	case int64:
		number = float64(typed)
	case float64:
		number = typed
	default:
		return nil, fmt.Errorf("result of type %T: %w", output, contracts.InvalidExpressionError)
	}

	if math.IsNaN(number) || math.IsInf(number, 0) {
		return nil, fmt.Errorf("`%s` is not finite: %w", expression, contracts.InvalidExpressionError)
	}

	return number, nil
}

func (e *FormulaEvaluator) evaluateIf(arguments string, grid contracts.Matrix) (any, error) {
	parts := splitTopLevel(arguments, ',')
	if len(parts) != 3 {
		return nil, fmt.Errorf("IF expects 3 arguments, got %d: %w", len(parts), contracts.InvalidExpressionError)
	}

	condition, err := e.evaluateCondition(parts[0], grid)
	if err != nil {
		return nil, err
	}

	if condition {
		return resolveOperand(parts[1], grid)
	}
	return resolveOperand(parts[2], grid)
}

func (e *FormulaEvaluator) evaluateCondition(condition string, grid contracts.Matrix) (bool, error) {
	for _, operator := range comparisonOperators {
		index := indexOutsideQuotes(condition, operator)
		if index < 0 {
			continue
		}

		left, err := resolveOperand(condition[:index], grid)
		if err != nil {
			return false, err
		}
		right, err := resolveOperand(condition[index+len(operator):], grid)
		if err != nil {
			return false, err
		}

		return compareOperands(left, right, operator), nil
	}

	value, err := resolveOperand(condition, grid)
	if err != nil {
		return false, err
	}
	return isTruthy(value), nil
}

// resolveOperand reads a quoted string, a cell reference or a number
func resolveOperand(operand string, grid contracts.Matrix) (any, error) {
	operand = strings.TrimSpace(operand)

	if len(operand) >= 2 && (operand[0] == '"' || operand[0] == '\'') && operand[len(operand)-1] == operand[0] {
		return operand[1 : len(operand)-1], nil
	}

	if upper := strings.ToUpper(operand); cellRefRegex.MatchString(upper) {
		coordinate, err := CellRefToCoordinate(upper)
		if err != nil {
			return nil, err
		}
		return gridValueAt(grid, coordinate.RowNumber-1, coordinate.ColumnIndex), nil
	}

	if number, ok := parseFiniteFloat(operand); ok {
		return number, nil
	}

	return nil, fmt.Errorf("operand `%s`: %w", operand, contracts.InvalidExpressionError)
}

func compareOperands(left any, right any, operator string) bool {
	_, leftIsText := left.(string)
	_, rightIsText := right.(string)

	var result int
	if leftIsText || rightIsText {
		result = cmp.Compare(operandText(left), operandText(right))
	} else {
		result = cmp.Compare(NumericGridValue(left), NumericGridValue(right))
	}

	switch operator {
	case ">=":
		return result >= 0
	case "<=":
		return result <= 0
	case "!=":
		return result != 0
	case "=":
		return result == 0
	case ">":
		return result > 0
	case "<":
		return result < 0
	}
	return false
}

func operandText(value any) string {
	if value == nil {
		return ""
	}
	return FormatResult(value)
}

func isTruthy(value any) bool {
	switch typed := value.(type) {
	case float64:
		return typed != 0
	case string:
		return typed != ""
	default:
		return false
	}
}

// floatLiterals turns `12` into `12.0`: integers past int64 would not even parse
func floatLiterals(expression string) string {
	return numberLiteralRegex.ReplaceAllStringFunc(expression, func(literal string) string {
		if strings.Contains(literal, ".") {
			return literal
		}
		return literal + ".0"
	})
}

// formatOperand keeps negative values parenthesized so `B1-A1` never turns into `20--5`
func formatOperand(number float64) string {
	text := strconv.FormatFloat(number, 'f', -1, 64)
	if number < 0 {
		return "(" + text + ")"
	}
	return text
}

// splitTopLevel splits on sep outside of quotes and parentheses
func splitTopLevel(text string, sep byte) []string {
	parts := make([]string, 0, 3)
	depth := 0
	var quote byte
	start := 0

	for i := 0; i < len(text); i++ {
		char := text[i]
		switch {
		case quote != 0:
			if char == quote {
				quote = 0
			}
		case char == '"' || char == '\'':
			quote = char
		case char == '(':
			depth++
		case char == ')':
			depth--
		case char == sep && depth == 0:
			parts = append(parts, text[start:i])
			start = i + 1
		}
	}

	return append(parts, text[start:])
}

func indexOutsideQuotes(text string, needle string) int {
	var quote byte
	for i := 0; i+len(needle) <= len(text); i++ {
		char := text[i]
		switch {
		case quote != 0:
			if char == quote {
				quote = 0
			}
		case char == '"' || char == '\'':
			quote = char
		case text[i:i+len(needle)] == needle:
			return i
		}
	}
	return -1
}
