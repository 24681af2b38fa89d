/* Package main: processes and the procedures that generate them

Chapter 1 of Structure and Interpretation of Computer Programs opens with
the idea of a computational process: an abstract being that inhabits the
computer and manipulates data, directed by a pattern of rules called a
procedure. This program transcribes the numeric examples of sections 1.1 and
1.2 so that each can be run, and its output compared with the book.

Section 1.1.7: square roots by Newton's method, see internal/newton

To approximate the square root of x, take a guess y and improve it by
averaging y with x/y until the square of the guess is close enough to x. The
book first writes this as a procedure that calls itself; ApproximateRoot keeps
that shape, with the book's fixed tolerance of 0.001. ApproximateRootIter is
the same process written as a loop, taking its tolerance as an argument and
counting its steps into a process wide counter.

A tolerance can be smaller than floating point arithmetic can ever satisfy:
once an improvement no longer changes the guess, the loop stops regardless.

Exercise 1.8: cube roots

Newton's method for cube roots improves a guess y for the root of x as
(x/y² + 2y) / 3.

Section 1.2.1: linear recursion and iteration, see internal/factorial

The factorial of n may be computed as n times the factorial of n-1; the
resulting process builds a chain of deferred multiplications as long as n,
and so needs a stack. Or it may keep a running product and a counter, whose
values summarize the whole state of the process at any step; such an
iterative process can run on hardware with no stack at all.

Exercise 1.10: Ackermann's function, see internal/ackermann

	A(x, 0) = 0
	A(0, y) = 2y
	A(x, 1) = 2
	A(x, y) = A(x-1, A(x, y-1))

A(1, 10), A(2, 4) and A(3, 3) make a good demonstration; A(3, 4) does not
finish in any reasonable time, so try it with --timeout.

Each exercise is a subcommand; run with no subcommand to see all of them.

*/
package main
