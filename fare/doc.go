// SPDX-License-Identifier: MIT

// Package fare turns a travelled distance, the lines ridden and the rider
// into a monetary fare.
//
// The fare is built in three steps:
//
//  1. Distance tiers. Up to BaseDistance the rider pays BaseFare. Every
//     started MidStep beyond it, up to MidDistance, adds MidIncrement. Every
//     started LongStep beyond MidDistance adds LongIncrement.
//  2. Line surcharge. The highest surcharge among the lines used is added
//     once; surcharges are never summed.
//  3. Age discount, for authenticated riders only. Below FreeUnderAge the fare
//     is zero. In the child band [FreeUnderAge, ChildMaxAge) and the teen band
//     [ChildMaxAge, TeenMaxAge) Deduction is subtracted first (flooring at
//     zero) and the band's percentage is taken off the remainder.
//
// All numbers live in Policy so the schedule can be tuned without touching
// the algorithm. DefaultPolicy carries a typical metropolitan schedule.
package fare
