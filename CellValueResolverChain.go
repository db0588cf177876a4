package main

import "github.com/Halukc1974/erp-sub000/contracts"

func NewCellValueResolverChain(first contracts.CellValueResolver, second contracts.CellValueResolver) contracts.CellValueResolver {
	if second == nil {
		return first
	}

	if first == nil {
		return second
	}

	return func(row *contracts.Row, columnName string) (contracts.RawValue, bool) {
		if value, ok := first(row, columnName); ok {
			return value, true
		}
		return second(row, columnName)
	}
}

// NewFormulaValuesResolver resolves cells holding a formula to the formula's last calculated value
func NewFormulaValuesResolver(formulas []*contracts.Formula) contracts.CellValueResolver {
	calculated := make(map[string]string, len(formulas))
	for _, formula := range formulas {
		if formula.CalculatedValue != nil {
			calculated[formula.RowId+"\x00"+formula.ColumnName] = *formula.CalculatedValue
		}
	}

	return func(row *contracts.Row, columnName string) (contracts.RawValue, bool) {
		if value, ok := calculated[row.Id+"\x00"+columnName]; ok {
			return contracts.NewTextValue(value), true
		}
		return contracts.RawValue{}, false
	}
}

func RowDataResolver(row *contracts.Row, columnName string) (contracts.RawValue, bool) {
	value, ok := row.Data[columnName]
	return value, ok
}
