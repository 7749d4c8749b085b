// Package item provides the Item aggregate: a sellable product with a unit
// price and a stock quantity that never goes negative.
//
// Stock changes only through ReduceStock and AddStock. Placing an order line
// reduces stock; cancelling the line adds the same count back.
package item
