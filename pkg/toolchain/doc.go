/*
Package toolchain classifies C/C++ compiler and preprocessor drivers by
vendor family and memoizes the family-specific driver objects a build
pipeline constructs from them.

Classification is expensive: it spawns the executable with a version query
and matches the captured output against known vendor banners. A Probe runs
that query at most once per tool, and a Provider builds the driver object
at most once per resolution context, no matter how many build rules ask
concurrently.
*/
package toolchain
