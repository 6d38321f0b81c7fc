// Package ticket provides the support ticket aggregate.
package ticket
