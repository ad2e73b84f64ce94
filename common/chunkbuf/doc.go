// Package chunkbuf 提供分块累积缓冲区，用于增量收集长度未知的大量同类元素（字节或字符）。
//
// 缓冲区由一组定长分段组成，增长时只追加新分段，已分配的分段不会被扩容或拷贝。
// 累积完成后可以：
//  1. 按原始顺序整体写出至 Sink、io.Writer 或 network.Writer；
//  2. 将任意区间拷贝到调用方提供的切片；
//  3. 物化为一个连续切片；
//  4. 通过支持 Mark/Reset 的顺序读取视图零拷贝地读取。
//
// 并发：Store 与 View 均无内部锁，同一实例只能由单个协程使用或由调用方加锁。
// 视图在创建时冻结元素个数与分段列表，之后的追加对其不可见；
// 视图未关闭时调用 Clear 或缩短长度的 SetLength 不受支持，此时会输出系统告警。
package chunkbuf
