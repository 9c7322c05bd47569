// Package commands implements medtourctl, the operator CLI for seeding
// catalog stores and previewing contact links and carousel layouts.
package commands
