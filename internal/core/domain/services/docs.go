// Package services contains stateless domain services for the ordering system.
//
// Domain services implement business logic that spans entities without
// belonging to any single aggregate. The package currently provides the
// LinePricer, which turns requested (product, quantity) pairs into priced
// order lines using the product snapshot taken at order time.
package services
