// Package plan models the routing provider's output consumed by this
// service: the Plan generated per route and date, and the ordered
// ScheduleStop sequence fetched for a plan. Both are read-only reference
// data here; the provider owns them.
package plan
