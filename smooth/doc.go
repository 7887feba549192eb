// package smooth provides Nginx-style smooth weighted round-robin selection
//
// On each call every item earns its weight as credit, the item with the
// most credit is selected and pays back the total weight. This spreads a
// high-weight item's turns evenly across the cycle:
//
// > For edge case weights like { 5, 1, 1 } we now produce { a, a, b, a, c, a, a }
// > sequence instead of { c, b, a, a, a, a, a } produced previously.
//
// https://github.com/phusion/nginx/commit/27e94984486058d73157038f7950a0a36ecc6e35
package smooth
