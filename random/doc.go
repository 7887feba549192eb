// package random provides weighted random selection
//
// Each call draws a uniform integer in [0, totalWeight) and scans the
// items in insertion order, so every item is picked with probability
// weight/totalWeight. The schedule follows the weight ratios in the long
// run but is not smooth: consecutive calls may repeat the same item.
package random
