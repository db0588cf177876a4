package contracts

type DependencyFinder interface {
	// FindDependents
	/**
	 * Returns formulas of live rows which (may) read a cell of changedColumnName.
	 * Example, column `price` is the second column (letter B):
	 *    - `=B1*2`        => dependent
	 *    - `=SUM(B1:B5)`  => dependent
	 *    - `=A1+C1`       => not dependent
	 */
	FindDependents(changedColumnName string, table *TableData, formulas []*Formula) []*Formula
}
