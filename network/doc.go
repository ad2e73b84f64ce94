// Package network 定义缓冲读写的抽象，分块缓冲区通过它与服务运行时的连接对接。
//
// 提供基于 io.Writer 的 mcache 缓冲写入器实现；
// 其他实现（如 netpoll 的 LinkBuffer）只要满足接口即可直接使用。
package network
