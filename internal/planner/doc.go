// Package planner holds the derived-value arithmetic behind the dashboard pages:
// the 50/30/20 splitter, cash-flow distribution, fund projections and goal progress.
//
// Everything here is a pure function of its inputs. The contribution formulas divide by
// a fixed assumed-return factor instead of amortizing, so they can be swapped for an
// actuarial formula without touching the web layer.
package planner
