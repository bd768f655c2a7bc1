// Package metrics compares solver results computed over the same node and
// obstacle configuration.
//
// For each result it derives:
//   - PathOptimalityPercent: shortest complete length found / this length · 100;
//   - ComputationSpeed: length per millisecond of solver time;
//   - PathSmoothnessTurns: vertices of the closed tour where the direction
//     changes by more than TurnThresholdDegrees (and is not a near-reversal);
//   - ImprovementRatePercent: (initial − final) / initial · 100 for solvers
//     that report an initial length (GA, TPSMA), nil otherwise.
//
// Percentages and speed are rounded to two decimals. Partial results take
// part in the report but never define the shortest length.
package metrics
