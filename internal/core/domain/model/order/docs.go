// Package order provides the Order aggregate of the shop domain together with
// the entities it owns.
//
// The package includes:
//   - Order: the aggregate root managing status, total price and cancellation
//   - OrderLine: one item bought at a captured unit price
//   - Delivery: the shipping record created from the member's address
//   - Status and DeliveryStatus: the persisted state enumerations
//
// Key business rules:
//   - an order has at least one line, and its lines never change afterwards
//   - creating a line reserves stock on the item; cancelling returns it
//   - an order can be cancelled once, and never after its delivery completed
//   - the total price is the sum of line subtotals and is never stored
package order
