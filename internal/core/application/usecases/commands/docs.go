// Package commands contains the operations that change orders: accepting a new order,
// editing a pending one and moving an order through the kitchen lifecycle.
// Every command is built by its constructor, which validates the input; every handler
// validates the command again and works against ports.OrderRepository.
package commands
