// Package xconf 加载 xbeanctl 的配置，基于 koanf 实现。
//
// # 加载
//
//   - [New]：从文件加载，格式由扩展名决定（.yaml、.yml、.json）
//   - [NewFromBytes]：从内存数据加载，需显式指定格式
//
// 空文件与空数据得到空配置。[Config.Client] 暴露底层 koanf 实例，
// [Config.Unmarshal] 用 mapstructure 解码，允许弱类型转换（"256" 可解码为 int）。
//
// # 运行配置
//
// [LoadSettings] 在 [DefaultSettings] 之上叠加配置文件中的值并校验，
// 得到 [Settings]：Resolver 选项、日志选项与输出格式。
//
// # 并发
//
// 所有方法并发安全。Reload 串行执行，成功后原子替换 koanf 实例，失败时保留旧配置。
package xconf
