// See types.go for the Counter interface.
package counter
