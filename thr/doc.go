//Package thr computes the passing fraction a proposal requires while voting is
//open. It offers two independent strategies: an explicit Model evaluated over
//the elapsed minutes (with an optional emergency override), or a named Profile.
package thr
