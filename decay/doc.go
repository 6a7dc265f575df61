//Package decay maps a vote's initial weight and the time since it was cast onto
//its decayed weight. All functions are pure, the caller supplies both timestamps.
package decay
