// Package embedded 保存嵌入的数据文件系统
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包保存该文件系统，让其他包无需依赖 main 包即可读取 data/ 下的配置。
//
// 使用前必须调用 Init() 初始化。
package embedded

import "io/fs"

var dataFS fs.FS

// Init 设置嵌入的数据文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
}

// FS 返回嵌入的数据文件系统，未初始化时返回 nil
func FS() fs.FS {
	return dataFS
}
