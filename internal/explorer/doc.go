// Package explorer provides the literature explorer whose operations the
// dashboard monitors: paper search, recommendation generation and research
// trend analysis.
//
// The Explorer interface is all the dashboard depends on. Library implements
// it over a SQLite paper Store; Faulty and Timed are decorators used for demo
// fault injection and performance logging.
package explorer
