// Package services provides domain services that orchestrate business operations
// across several aggregates of the shop domain.
//
// The package includes:
//   - OrderPlacer: builds an order together with its delivery and line, reserving stock
package services
