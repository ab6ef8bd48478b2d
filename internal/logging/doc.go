// Package logging builds the slog loggers mediasweep runs with.
//
// Two formats: "console" renders one line per record as
// "ts LEVEL component: msg key=value ...", "json" emits standard slog JSON
// with ts/level/msg key names. Log records go to stderr and, when a log
// directory is configured, to mediasweep.log as well -- stdout stays
// reserved for report output.
package logging
