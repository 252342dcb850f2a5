// Package polling implements the client side of the job backend's
// submit-then-poll contract.
//
// Poller runs one cancellable poll loop per in-flight job: fast cadence
// for schedule fetches, slow cadence for long jobs, a bounded maximum
// duration, and exactly one terminal sink call per job. Monitor sits on
// top, owning the tasks and materializing job state and fetched schedules
// for the HTTP layer.
//
// Loops for different jobs are fully independent; each owns a distinct
// job identifier and writes distinct state, so no coordination beyond the
// monitor's map mutex is needed.
package polling
