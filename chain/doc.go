//Package chain implements an in-memory, tamper-evident hash chain. Each block
//hashes its index, timestamp, payload and the hash of its predecessor; verifying
//the chain recomputes every hash instead of trusting the stored ones.
package chain
