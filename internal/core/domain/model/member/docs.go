// Package member provides the Member entity: a registered customer who places
// orders. Orders reference members but never own or modify them; the member's
// address is copied into the delivery of every order placed.
package member
