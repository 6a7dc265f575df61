//Package engine tallies proposals: it drops invalid ballots, weighs the rest
//with their decay and reputation, evaluates them against the proposal's
//requirement and anchors the decision in a hash chain that can be audited.
package engine
