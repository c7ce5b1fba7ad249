// See types.go for Matrix and matrix.go/statistics.go for its
// operations.
package matrix
