// package roundrobin provides LVS-style weighted round-robin selection
//
// The scheduler scans the items cyclically against a stepping weight
// threshold, so higher-weight items are selected more densely within a
// cycle. Within one super-cycle of totalWeight/gcd calls each item is
// selected weight/gcd times, but the turns of a high-weight item cluster
// together instead of interleaving.
//
// http://kb.linuxvirtualserver.org/wiki/Weighted_Round-Robin_Scheduling
package roundrobin
