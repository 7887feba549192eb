// package weighted provides weighted item selection
//
// It ships three interchangeable algorithms behind one Selector interface:
//
// - random: weighted random pick, follows the weight ratios but is not smooth
//
// - round-robin: the weighted round-robin scheduling used by LVS
//   http://kb.linuxvirtualserver.org/wiki/Weighted_Round-Robin_Scheduling
//
// - smooth: the smooth weighted round-robin balancing used by Nginx
//   https://github.com/phusion/nginx/commit/27e94984486058d73157038f7950a0a36ecc6e35
//
// Callers hold a Selector and can swap the algorithm at configuration time:
//
//	s, err := weighted.New[string](weighted.MethodSmooth)
//	if err != nil {
//		...
//	}
//	s.Add("server1", 5)
//	s.Add("server2", 2)
//	s.Add("server3", 3)
//	for i := 0; i < 10; i++ {
//		v, err := s.Next()
//		...
//	}
//
// A Selector is not safe for concurrent use, callers must serialize access.
package weighted
