// Package kernel provides the value objects shared by every aggregate of the
// shop domain.
//
// The package includes:
//   - UUID: identity of members, items, orders, deliveries and order lines
//   - Address: city, street and zipcode of a member and of a delivery
//   - Money: a non-negative decimal amount in a single ISO 4217 currency
//
// Values are immutable. Each one must be obtained from its constructor;
// Validate reports zero values created with struct literals.
package kernel
