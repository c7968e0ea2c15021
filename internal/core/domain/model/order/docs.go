// Package order holds the order aggregate of the restaurant intake service.
//
// The package includes:
//   - Item: a line of an order (product, quantity, unit price and an optional note)
//   - Draft: validated and sanitized order input that has not been accepted yet
//   - Order: the aggregate root, a Draft plus identity, creation time and status
//   - Status: the kitchen lifecycle pending -> preparing -> ready
//
// Key business rules:
//   - Free text is stripped of markup and trimmed before lengths are checked
//   - customerName and table are 1..100 characters, productName 1..500, note 0..500
//   - quantity is a positive integer, unitPrice a finite non-negative number
//   - An order is created pending and its status only moves forward
//   - An order can be edited only while it is pending
package order
