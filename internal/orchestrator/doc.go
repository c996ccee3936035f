// Package orchestrator runs a project's test suite inside a container.
//
// The pipeline has two sequential phases:
//
//  1. Build: a container image is built from the project's CI build
//     description, with the project root as the build context.
//  2. Run: an ephemeral container is started from that image with the
//     project root bind-mounted as the working directory, executing the
//     configured step chain (install the CI reporter, install the
//     project with its test extras, invoke the test runner).
//
// The build phase must succeed before the run phase starts; there is no
// retry in either phase. The run phase's exit status is surfaced as a
// *RunError carrying the container's exit code so callers (the CLI) can
// pass it through to the CI system unchanged.
//
// Subprocess execution goes through the CommandRunner interface so the
// pipeline can be unit-tested without a container runtime on PATH.
package orchestrator
